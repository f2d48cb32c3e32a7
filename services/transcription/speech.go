package transcription

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

// Transcriber converts recorded audio into text. The voice flow is an
// external collaborator of the booking pipeline; the core never depends on it.
type Transcriber interface {
	Transcribe(ctx context.Context, wavData []byte, language string) (string, error)
}

// GoogleTranscriber implements Transcriber with Google Cloud Speech-to-Text.
type GoogleTranscriber struct {
	CredentialsFile string
}

func NewGoogleTranscriber(credentialsFile string) *GoogleTranscriber {
	return &GoogleTranscriber{CredentialsFile: credentialsFile}
}

// Transcribe converts the uploaded WAV to 16kHz mono PCM and runs one
// synchronous recognition request. Recordings are bounded by the handler, so
// the short-audio API is enough.
func (t *GoogleTranscriber) Transcribe(ctx context.Context, wavData []byte, language string) (string, error) {
	converted, err := convertToRecognitionFormat(wavData)
	if err != nil {
		return "", fmt.Errorf("audio conversion failed: %w", err)
	}

	client, err := speech.NewClient(ctx, option.WithCredentialsFile(t.CredentialsFile))
	if err != nil {
		return "", fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      language,
			AudioChannelCount: 1, // mono
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: converted,
			},
		},
	})
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

// convertToRecognitionFormat runs the input through ffmpeg to get 16kHz mono
// 16-bit PCM, the format the recognition config declares.
func convertToRecognitionFormat(wavData []byte) ([]byte, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg not found in system PATH: %v", err)
	}

	tempInput, err := os.CreateTemp("", "audio-*.wav")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tempInput.Name())
	defer tempInput.Close()

	if _, err := tempInput.Write(wavData); err != nil {
		return nil, err
	}

	tempOutput, err := os.CreateTemp("", "converted-*.wav")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tempOutput.Name())
	defer tempOutput.Close()

	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", tempInput.Name(),
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		tempOutput.Name(),
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}

	return os.ReadFile(tempOutput.Name())
}
