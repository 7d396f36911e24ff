package summaryModel

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
	Kannada Language = "kannada"
)

var supportedLanguages = map[Language]string{
	English: "English",
	Hindi:   "Hindi",
	Kannada: "Kannada",
}

// ResolveLanguage maps a client supplied value onto a supported language. Unknown values fall back to English.
func ResolveLanguage(raw string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := supportedLanguages[lang]; ok {
		return lang
	}
	return English
}

// DisplayName is the language name used inside the model prompt.
func (l Language) DisplayName() string {
	if name, ok := supportedLanguages[l]; ok {
		return name
	}
	return supportedLanguages[English]
}

func SupportedLanguages() []Language {
	return []Language{English, Hindi, Kannada}
}

type CachedSummary struct {
	Summary   string    `json:"summary"`
	Language  Language  `json:"language"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

// SummaryCache stores finished summaries keyed by CacheKey.
type SummaryCache interface {
	GetSummary(ctx context.Context, key string) (CachedSummary, bool)
	SaveSummary(ctx context.Context, key string, summary CachedSummary) error
}

// CacheKey identifies a summary by the model that wrote it, the target language and the exact
// text that was summarized.
func CacheKey(provider, model string, lang Language, text string) string {
	h := sha256.New()
	for _, part := range []string{provider, model, string(lang)} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	h.Write([]byte(text))
	return "summary:" + hex.EncodeToString(h.Sum(nil))
}
