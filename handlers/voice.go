package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"teampulse/services/transcription"

	"github.com/gin-gonic/gin"
)

const (
	// MaxFileSize caps voice uploads at 5MB; status updates are short.
	MaxFileSize      = 5 * 1024 * 1024
	AllowedExtension = ".wav"
)

// VoiceHandler accepts recorded status updates and returns the raw
// transcript. Turning the transcript into busy blocks happens client-side;
// the server does no interpretation.
type VoiceHandler struct {
	Transcriber transcription.TranscriptionService
}

// NewVoiceHandler creates a VoiceHandler.
func NewVoiceHandler(transcriber transcription.TranscriptionService) *VoiceHandler {
	return &VoiceHandler{Transcriber: transcriber}
}

// convertAudio normalizes arbitrary WAV input to LINEAR16 mono 16kHz, the
// format the speech API expects.
func convertAudio(inputPath, outputPath string) error {
	_, err := exec.LookPath("ffmpeg")
	if err != nil {
		return fmt.Errorf("ffmpeg not found in system PATH: %v", err)
	}

	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", inputPath,
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}
	return nil
}

// TranscribeVoiceHandler handles POST /api/status/voice.
func (h *VoiceHandler) TranscribeVoiceHandler(c *gin.Context) {
	language := c.DefaultPostForm("language", "en-US")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "audio file is required",
			"details": err.Error(),
		})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != AllowedExtension {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid file type",
			"details": fmt.Sprintf("expected %s, got %s", AllowedExtension, ext),
		})
		return
	}

	tempInput, err := os.CreateTemp("", "audio-*.wav")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create temp file",
			"details": err.Error(),
		})
		return
	}
	defer os.Remove(tempInput.Name())
	defer tempInput.Close()

	if _, err := io.Copy(tempInput, io.LimitReader(file, MaxFileSize)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save audio file",
			"details": err.Error(),
		})
		return
	}

	tempOutput, err := os.CreateTemp("", "converted-*.wav")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create output temp file",
			"details": err.Error(),
		})
		return
	}
	defer os.Remove(tempOutput.Name())
	defer tempOutput.Close()

	if err := convertAudio(tempInput.Name(), tempOutput.Name()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "audio conversion failed",
			"details": err.Error(),
		})
		return
	}

	audioData, err := os.ReadFile(tempOutput.Name())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to read converted audio",
			"details": err.Error(),
		})
		return
	}

	transcript, err := h.Transcriber.Transcribe(c.Request.Context(), audioData, language)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "speech recognition failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcription": transcript,
	})
}
