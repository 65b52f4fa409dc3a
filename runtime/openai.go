package runtime

import (
	"github.com/sashabaranov/go-openai"
)

type OpenAI struct {
	*openai.Client
	Model       string
	MaxTokens   int
	Temperature float32
}

func initOpenAI(config *OpenAIConfig) *OpenAI {
	cfg := openai.DefaultConfig(config.ApiKey)
	if config.BaseURL != "" {
		cfg.BaseURL = config.BaseURL
	}

	return &OpenAI{
		Client:      openai.NewClientWithConfig(cfg),
		Model:       config.Model,
		MaxTokens:   config.MaxTokens,
		Temperature: config.Temperature,
	}
}
