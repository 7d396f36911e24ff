package summary

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/config"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/metrics"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/pipeline"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/summarizer"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

// Service is the only thing the transports (HTTP, MCP) call. The pipeline, the model client
// and the cache stay behind it.
type Service interface {
	Summarize(ctx context.Context, req Request) (Result, error)
}

type Request struct {
	Filename string
	Body     io.Reader
	Language string
}

type Result struct {
	Summary  string
	Filename string
	Language summaryModel.Language
	Format   commonModels.DocType
	CacheHit bool
}

// Uploads stores an incoming body so the pipeline can read it back.
type Uploads interface {
	Save(body io.Reader, filename string, docType commonModels.DocType) (commonModels.UploadedDocument, error)
}

// Processor turns a stored upload into validated text and releases it.
type Processor interface {
	Process(ctx context.Context, doc commonModels.UploadedDocument) (pipeline.Result, error)
}

type ServiceConfig struct {
	Uploads  Uploads
	Pipeline Processor
	Provider summarizer.Provider
	Cache    summaryModel.SummaryCache
	Timeout  time.Duration
}

type service struct {
	uploads  Uploads
	pipeline Processor
	provider summarizer.Provider
	cache    summaryModel.SummaryCache
	timeout  time.Duration
	logger   *logger_i.Logger
}

func NewService(cfg ServiceConfig) Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.SummarizeTimeout
	}
	return &service{
		uploads:  cfg.Uploads,
		pipeline: cfg.Pipeline,
		provider: cfg.Provider,
		cache:    cfg.Cache,
		timeout:  timeout,
		logger:   logger_i.NewLogger("Summary Service"),
	}
}

func (s *service) Summarize(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	log := s.logger.WithTrace(ctx).With("filename", req.Filename)

	result, err := s.summarize(ctx, log, req)
	status := "ok"
	if err != nil {
		docErr := commonModels.AsDocumentError(err)
		status = string(docErr.Kind)
		log.Warn("summarize failed", "kind", docErr.Kind, "reason", docErr.Reason, "state", docErr.State, "error", docErr)
	}
	metrics.CaptureRequestMetrics(status, time.Since(start))
	return result, err
}

func (s *service) summarize(ctx context.Context, log *logger_i.Logger, req Request) (Result, error) {
	if req.Body == nil {
		return Result{}, commonModels.NewInputError(commonModels.ReasonNoFile, commonModels.StateReceived, commonModels.MsgNoFile)
	}
	if req.Filename == "" {
		return Result{}, commonModels.NewInputError(commonModels.ReasonEmptyFilename, commonModels.StateReceived, commonModels.MsgEmptyFilename)
	}

	// reject before touching the disk
	docType, err := pipeline.Classify(req.Filename)
	if err != nil {
		return Result{}, err
	}

	doc, err := s.uploads.Save(req.Body, req.Filename, docType)
	if err != nil {
		return Result{}, err
	}
	log = log.With("documentId", doc.Id)

	processed, err := s.pipeline.Process(ctx, doc)
	if err != nil {
		return Result{}, err
	}

	lang := summaryModel.ResolveLanguage(req.Language)
	result := Result{Filename: doc.Filename, Language: lang, Format: processed.Format}
	key := summaryModel.CacheKey(s.provider.Name(), s.provider.Model(), lang, processed.Text)

	if cached, found := s.executeCacheCheckStep(ctx, key); found {
		log.Info("summary served from cache", "language", lang)
		result.Summary = cached.Summary
		result.CacheHit = true
		return result, nil
	}

	html, err := s.executeSummarizeStep(ctx, log, processed.Text, lang)
	if err != nil {
		return Result{}, err
	}
	result.Summary = html

	s.executeCacheSaveStep(ctx, key, summaryModel.CachedSummary{
		Summary:   html,
		Language:  lang,
		Provider:  s.provider.Name(),
		CreatedAt: time.Now().UTC(),
	})

	log.Info("summary generated", "language", lang, "format", processed.Format, "chars", len(processed.Text))
	return result, nil
}

func (s *service) executeSummarizeStep(ctx context.Context, log *logger_i.Logger, text string, lang summaryModel.Language) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_"+s.provider.Name(), time.Since(start)) }()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.Summarize(callCtx, text, lang)
	if err != nil {
		log.Error("provider call failed", "provider", s.provider.Name(), "error", err)
		return "", commonModels.NewSummarizationError(summarizer.ClientMessage(err), err)
	}
	html, err := summarizer.FormatSummary(raw)
	if err != nil {
		return "", commonModels.NewSummarizationError("Summarization service error: unreadable summary", err)
	}
	if html == "" {
		err = errors.New("empty response")
		return "", commonModels.NewSummarizationError(summarizer.ClientMessage(err), err)
	}
	return html, nil
}

func (s *service) executeCacheCheckStep(ctx context.Context, key string) (summaryModel.CachedSummary, bool) {
	if s.cache == nil {
		return summaryModel.CachedSummary{}, false
	}
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("cache_lookup", time.Since(start)) }()

	cached, found := s.cache.GetSummary(ctx, key)
	metrics.CaptureCacheLookup(found)
	return cached, found
}

func (s *service) executeCacheSaveStep(ctx context.Context, key string, entry summaryModel.CachedSummary) {
	if s.cache == nil {
		return
	}
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("cache_save", time.Since(start)) }()

	if err := s.cache.SaveSummary(context.WithoutCancel(ctx), key, entry); err != nil {
		s.logger.WithTrace(ctx).Error("Failed to save summary to cache", "error", err)
	}
}
