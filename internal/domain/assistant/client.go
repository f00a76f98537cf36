package assistant

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// systemPrompt frames the assistant for medication questions. It deliberately
// steers away from diagnosis and prescribing.
const systemPrompt = "You are an intelligent, empathetic medical assistant designed to help users " +
	"with accurate, clear, and safe advice regarding their medicines and health conditions. " +
	"Always respond with kindness, clear explanations, and encourage users to consult healthcare " +
	"professionals for serious or urgent issues. Avoid giving medical diagnoses or prescribing " +
	"treatments but provide helpful information about medicine usage, drug interactions, side " +
	"effects, symptoms, and general health guidance based on trusted medical knowledge. Use simple " +
	"language and provide supportive, respectful answers to build user trust and ensure safety."

// Completer produces an assistant reply for a user message.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint.
// Groq and local gateways expose this API, so the base URL is configurable.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: model}
}

func (c *OpenAIClient) Complete(ctx context.Context, message string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}
	return resp.Choices[0].Message.Content, nil
}
