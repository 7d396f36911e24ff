package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/summarizer"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
	"google.golang.org/genai"
)

type Options struct {
	APIKey      string
	Model       string
	Temperature float32
	HTTPClient  *http.Client
	BaseURL     string
}

type llmClient struct {
	client      *genai.Client
	modelName   string
	temperature float32
	logger      *logger_i.Logger
}

func NewGeminiClient(ctx context.Context, opts Options) (summarizer.Provider, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	logger := logger_i.NewLogger("llm_gemini")
	logger.Info("Gemini client created", "model", opts.Model)
	return &llmClient{client: c, modelName: opts.Model, temperature: opts.Temperature, logger: logger}, nil
}

func (c *llmClient) Name() string {
	return "gemini"
}

func (c *llmClient) Model() string {
	return c.modelName
}

func (c *llmClient) Summarize(ctx context.Context, text string, lang summaryModel.Language) (string, error) {
	log := c.logger.WithTrace(ctx)
	prompt := summarizer.BuildPrompt(text, lang)

	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: prompt.System}},
		},
		Temperature: genai.Ptr(c.temperature),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt.User), contentConfig)
	if err != nil {
		log.Error("gemini generate failed", "model", c.modelName, "error", err)
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if result == nil {
		return "", errors.New("gemini: empty response")
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini: prompt blocked by safety filter (%s)", result.PromptFeedback.BlockReason)
	}
	out := result.Text()
	if out == "" {
		return "", errors.New("gemini: empty response")
	}
	log.Debug("gemini summary received", "chars", len(out))
	return out, nil
}
