package config

import (
	"log/slog"
	"time"
)

const (
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, the summary cache falls back to an in-memory store
	TRACE_ID_KEY                    = "traceId"
	TRACE_HEADER                    = "X-Trace-Id"

	//server listening port
	ServerListenAddr = ":5000"

	//serverTimeouts - the write timeout has to outlive a full summarize round trip
	ReadTimeout            = 30 * time.Second
	WriteTimeout           = 150 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//uploads
	UploadFolder     = "uploads"
	MaxContentLength = 16 << 20 //16mb
	MinContentLength = 10
	PdfPageTimeout   = 10 * time.Second
	PdfPageWorkers   = 8 //process wide cap on page extractions in flight, stalled ones included

	//llm
	ProviderGemini          = "gemini"
	ProviderOpenAI          = "openai"
	GeminiModelName         = "gemini-2.0-flash-exp"
	OpenAIModelName         = "gpt-4o-mini"
	ModelTemperature        = 0.7
	SummarizeTimeout        = 120 * time.Second
	RATE_LIMIT_PER_SECOND   = 2
	BURST_RATE_LIMIT_SECOND = 5

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisSummaryStore = 0

	//redis timeouts
	RedisSummaryStoreTTL = 24 * time.Hour
	RedisPingTimeout     = 3 * time.Second
)
