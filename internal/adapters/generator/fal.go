package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// FAL wraps the FAL image generation API.
type FAL struct {
	apiKey                  string
	imageGenerationEndpoint string
}

func NewFAL(imageGenerationEndpoint, apiKey string) *FAL {
	return &FAL{
		apiKey:                  apiKey,
		imageGenerationEndpoint: imageGenerationEndpoint,
	}
}

type imageGenerationRequest struct {
	Prompt string `json:"prompt"`
}

type imageResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Prompt string `json:"prompt"`
}

func (f *FAL) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	falRequest := imageGenerationRequest{
		Prompt: prompt,
	}

	payloadBuf := new(bytes.Buffer)
	err := json.NewEncoder(payloadBuf).Encode(falRequest)
	if err != nil {
		return "", fmt.Errorf("error encoding FAL request: %w", err)
	}

	body, err := f.postFALRequest(ctx, f.imageGenerationEndpoint, payloadBuf)
	if err != nil {
		return "", fmt.Errorf("FAL request failed: %w", err)
	}

	var result imageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("error unmarshalling FAL imageResponse: %w", err)
	}

	if len(result.Images) == 0 {
		return "", errors.New("no images returned from FAL response")
	}

	log.Debug().Interface("result", result).Msg("FAL imageResponse")

	return result.Images[0].URL, nil
}

func (f *FAL) postFALRequest(ctx context.Context, url string, payloadBuf *bytes.Buffer) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, payloadBuf)
	if err != nil {
		log.Error().Err(err).Msg("error creating POST request for FAL")
		return nil, err
	}

	req.Header.Add("Authorization", "Key "+f.apiKey)
	req.Header.Add("Content-Type", "application/json")

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing FAL request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected FAL status code: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading FAL response: %w", err)
	}
	return body, nil
}
