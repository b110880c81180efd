package service

import (
	"context"
	"errors"

	config "github.com/maheshrc27/autoshorts-api/configs"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// TextCompleter is the text-generation capability. Implementations may
// fail or be absent; callers own the fallback behavior.
type TextCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type openAICompleter struct {
	client openai.Client
	model  openai.ChatModel
}

func NewOpenAICompleter(cfg config.Config) TextCompleter {
	model := openai.ChatModel(cfg.OpenAIModel)
	if cfg.OpenAIModel == "" {
		model = openai.ChatModelGPT4oMini
	}
	return &openAICompleter{
		client: openai.NewClient(option.WithAPIKey(cfg.OpenAIKey)),
		model:  model,
	}
}

func (c *openAICompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	chatCompletion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model:       c.model,
		Temperature: openai.Float(0.9),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", err
	}

	if len(chatCompletion.Choices) == 0 {
		return "", errors.New("no response from model")
	}

	content := chatCompletion.Choices[0].Message.Content
	if content == "" {
		return "", errors.New("model returned empty response")
	}

	return content, nil
}
