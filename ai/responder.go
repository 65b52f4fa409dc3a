// Package ai wraps the chat completion API with the bot's persona.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const persona = "You are Gilbert AI, a helpful and friendly assistant for a creative agency. " +
	"You help with client communication, project management, and creative tasks. " +
	"You have a conversational tone and remember important information from conversations. " +
	"If you don't know something, say so and offer to help find the answer."

const extractPrompt = "Decide whether the user's message contains information worth remembering: " +
	"facts, decisions, deadlines, client preferences or other key details. " +
	"If it does, call remember_facts with a concise summary. Otherwise reply with an empty message."

var ErrNoChoices = errors.New("completion returned no choices")

var rememberTool = openai.Tool{
	Type: openai.ToolTypeFunction,
	Function: &openai.FunctionDefinition{
		Name:        "remember_facts",
		Description: "Store important facts, decisions and deadlines from the conversation.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"facts": map[string]interface{}{
					"type":        "string",
					"description": "Concise summary of the information to remember.",
				},
			},
			"required": []string{"facts"},
		},
	},
}

type rememberArgs struct {
	Facts string `json:"facts"`
}

// Turn is one earlier message of the conversation.
type Turn struct {
	FromBot bool
	Content string
}

type Responder struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

type Option func(*Responder)

// WithTemperature sets the sampling temperature of answers. Zero leaves the
// model default.
func WithTemperature(t float32) Option {
	return func(r *Responder) {
		r.temperature = t
	}
}

func NewResponder(client *openai.Client, model string, maxTokens int, opts ...Option) *Responder {
	if model == "" {
		model = openai.GPT4oMini
	}
	r := &Responder{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func buildMessages(prompt string, memories []string, history []Turn) []openai.ChatCompletionMessage {
	msgs := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: persona},
	}
	if len(memories) > 0 {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: "Context from previous conversations: " + strings.Join(memories, " "),
		})
	}
	for _, t := range history {
		role := openai.ChatMessageRoleUser
		if t.FromBot {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: t.Content})
	}
	return append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
}

// Respond answers prompt using remembered facts and the recent conversation.
func (r *Responder) Respond(ctx context.Context, prompt string, memories []string, history []Turn) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Messages:    buildMessages(prompt, memories, history),
		MaxTokens:   r.maxTokens,
		Temperature: r.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Extract returns the facts in text worth remembering, or "" when there are
// none.
func (r *Responder) Extract(ctx context.Context, text string) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Tools:       []openai.Tool{rememberTool},
		ToolChoice:  "auto",
		MaxTokens:   150,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("extract facts: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	for _, call := range resp.Choices[0].Message.ToolCalls {
		if call.Function.Name != rememberTool.Function.Name {
			continue
		}
		var args rememberArgs
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return "", fmt.Errorf("decode %s arguments: %w", call.Function.Name, err)
		}
		return strings.TrimSpace(args.Facts), nil
	}
	return "", nil
}
