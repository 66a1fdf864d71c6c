package speech

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
)

// Config carries the recognition parameters. Uploads are expected as 16 kHz
// LINEAR16 WAV unless configured otherwise.
type Config struct {
	SampleRateHertz int32
	LanguageCode    string
}

func DefaultConfig() Config {
	return Config{
		SampleRateHertz: 16000,
		LanguageCode:    "en-US",
	}
}

// GoogleTranscriber recognizes speech through the Google Cloud Speech API.
type GoogleTranscriber struct {
	client *speech.Client
	config Config
}

func NewGoogleTranscriber(ctx context.Context, config Config) (*GoogleTranscriber, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &GoogleTranscriber{
		client: client,
		config: config,
	}, nil
}

// Transcribe runs synchronous recognition and joins the top alternative of
// each result with spaces.
func (g *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	response, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: g.config.SampleRateHertz,
			LanguageCode:    g.config.LanguageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var parts []string
	for _, result := range response.GetResults() {
		alternatives := result.GetAlternatives()
		if len(alternatives) > 0 {
			parts = append(parts, alternatives[0].GetTranscript())
		}
	}

	return strings.Join(parts, " "), nil
}

func (g *GoogleTranscriber) Close() error {
	return g.client.Close()
}
