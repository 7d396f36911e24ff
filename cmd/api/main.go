// @title           Legal Document Summarizer API
// @version         1.0
// @description     Upload a PDF, DOCX or TXT legal document and receive an AI generated summary in English, Hindi or Kannada.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/config"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/customHttpClient"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/data/store"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/handlers"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/mcpserver"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/middleware"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/pipeline"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/server"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/storage"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/summarizer"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/summarizer/gemini"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/summarizer/openai"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/summary"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.ListenAddr, "listen-addr", cfg.ListenAddr, "server listen address")
	flag.Parse()

	logger_i.Init(cfg)
	var logger = logger_i.NewLogger("main")

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	llmProvider, err := newProvider(serviceContext, cfg)
	if err != nil {
		logger.Error("LLM provider failed to initialize. Shutting down.", "provider", cfg.LLMProvider, "error", err)
		return
	}

	uploads, err := storage.NewTempStore(cfg.UploadFolder, cfg.MaxContentLength)
	if err != nil {
		logger.Error("Upload folder is not usable. Shutting down.", "folder", cfg.UploadFolder, "error", err)
		return
	}

	cache := store.NewSummaryCache(serviceContext, cfg)
	documentPipeline := pipeline.New(uploads, pipeline.NewExtractors(cfg.PdfPageTimeout), pipeline.NewValidator(cfg.MinContentLength, cfg.MaxDocumentChars))

	service := summary.NewService(summary.ServiceConfig{
		Uploads:  uploads,
		Pipeline: documentPipeline,
		Provider: llmProvider,
		Cache:    cache,
		Timeout:  cfg.SummarizeTimeout,
	})
	logger.Info("Summary service ready", "provider", llmProvider.Name(), "cache", store.BackendName(cache), "uploads", uploads.Dir())

	middleware.ConfigureRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	summaryHandler := handlers.NewSummaryHandler(handlers.HandlerConfig{
		Service:      service,
		MaxBytes:     cfg.MaxContentLength,
		ProviderName: llmProvider.Name(),
		CacheBackend: store.BackendName(cache),
	})
	mcpServer := mcpserver.NewServer(mcpserver.NewTools(service, cfg.MaxContentLength), version)

	router := server.NewRouter(cfg, server.Routes{
		Summary: summaryHandler,
		MCP:     mcpserver.Handler(mcpServer, cfg.MaxContentLength),
	})

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	server.CreateServer(cfg, router)
	go server.ShutDownHandler(cfg, server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	})
	go server.ListenAndServe()

	<-stopExecution
	logger.Info("Server stopped")
}

func newProvider(ctx context.Context, cfg *config.Config) (summarizer.Provider, error) {
	httpClient := customHttpClient.NewHTTPClient(cfg.SummarizeTimeout)
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return openai.NewOpenAIClient(openai.Options{
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.OpenAIModel,
			Temperature: cfg.ModelTemperature,
			HTTPClient:  httpClient,
		})
	default:
		return gemini.NewGeminiClient(ctx, gemini.Options{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			Temperature: cfg.ModelTemperature,
			HTTPClient:  httpClient,
		})
	}
}
