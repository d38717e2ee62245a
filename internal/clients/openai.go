// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

// Package clients wraps the outbound collaborators: the OpenAI API for
// content and image generation, the WECAR market statistics feed, and the
// Apify actor used to scrape Realtor.ca listings. All clients rate-limit
// their calls and record request metrics.
package clients

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/metrics"
)

// completionAPI is the slice of the OpenAI client the wrapper uses.
// Narrowing the surface keeps tests free of real API calls.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
}

// OpenAIClient generates captions and listing images.
type OpenAIClient struct {
	api        completionAPI
	model      string
	imageModel string
	imageSize  string
	logger     zerolog.Logger
}

const captionSystemPrompt = "You are a social media copywriter for a real estate agent " +
	"serving Windsor-Essex, Ontario. Write engaging, factual post copy. " +
	"Do not invent prices, addresses or property details that were not provided."

// NewOpenAIClient builds a client from configuration. The API key must be set.
func NewOpenAIClient(cfg config.OpenAIConfig, logger zerolog.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = openai.CreateImageModelDallE3
	}
	imageSize := cfg.ImageSize
	if imageSize == "" {
		imageSize = openai.CreateImageSize1024x1024
	}

	return &OpenAIClient{
		api:        openai.NewClient(cfg.APIKey),
		model:      model,
		imageModel: imageModel,
		imageSize:  imageSize,
		logger:     logger.With().Str("client", "openai").Logger(),
	}, nil
}

// GenerateCaption asks the model for post copy following the given prompt.
// An optional brand voice description steers tone and vocabulary.
func (c *OpenAIClient) GenerateCaption(ctx context.Context, prompt, brandVoice string) (string, error) {
	system := captionSystemPrompt
	if brandVoice != "" {
		system += "\n\nBrand voice: " + brandVoice
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	metrics.RecordClientRequest("openai", time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateImage creates a listing image and returns its URL.
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          c.imageModel,
		Size:           c.imageSize,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	metrics.RecordClientRequest("openai", time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("image generation returned no data")
	}
	return resp.Data[0].URL, nil
}
