package transcription

import "context"

// TranscriptionService turns recorded speech into text. It is a thin
// collaborator: no parsing or interpretation happens server-side, the raw
// transcript goes back to the client.
type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}
