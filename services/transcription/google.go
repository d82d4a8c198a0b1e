package transcription

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

// GoogleSpeechService implements TranscriptionService with Google Cloud STT.
// Audio must already be LINEAR16 mono at 16kHz; the voice handler converts
// uploads before calling Transcribe.
type GoogleSpeechService struct {
	CredentialsFile string
}

func NewGoogleSpeechService(credentialsFile string) *GoogleSpeechService {
	return &GoogleSpeechService{CredentialsFile: credentialsFile}
}

func (s *GoogleSpeechService) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if language == "" {
		language = "en-US"
	}

	client, err := speech.NewClient(ctx, option.WithCredentialsFile(s.CredentialsFile))
	if err != nil {
		return "", fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      language,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audio,
			},
		},
	}

	resp, err := client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	return strings.TrimSpace(transcript.String()), nil
}
