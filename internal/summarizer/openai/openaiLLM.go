package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/summarizer"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

type Options struct {
	APIKey      string
	Model       string
	Temperature float32
	HTTPClient  *http.Client
	BaseURL     string
}

type llmClient struct {
	client      openai.Client
	modelName   string
	temperature float64
	logger      *logger_i.Logger
}

func NewOpenAIClient(opts Options) (summarizer.Provider, error) {
	if opts.APIKey == "" {
		return nil, errors.New("openai api key is empty")
	}
	requestOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.HTTPClient != nil {
		requestOpts = append(requestOpts, option.WithHTTPClient(opts.HTTPClient))
	}
	if opts.BaseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(opts.BaseURL))
	}
	logger := logger_i.NewLogger("llm_openai")
	logger.Info("OpenAI client created", "model", opts.Model)
	return &llmClient{
		client:      openai.NewClient(requestOpts...),
		modelName:   opts.Model,
		temperature: float64(opts.Temperature),
		logger:      logger,
	}, nil
}

func (c *llmClient) Name() string {
	return "openai"
}

func (c *llmClient) Model() string {
	return c.modelName
}

func (c *llmClient) Summarize(ctx context.Context, text string, lang summaryModel.Language) (string, error) {
	log := c.logger.WithTrace(ctx)
	prompt := summarizer.BuildPrompt(text, lang)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		log.Error("openai completion failed", "model", c.modelName, "error", err)
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("openai: empty response")
	}
	if resp.Choices[0].FinishReason == "content_filter" {
		return "", errors.New("openai: response blocked by safety filter")
	}
	return resp.Choices[0].Message.Content, nil
}
