package summarizer

import (
	"context"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
)

// Provider produces a legal summary of text in lang. Implementations make exactly one upstream
// call per invocation.
type Provider interface {
	Summarize(ctx context.Context, text string, lang summaryModel.Language) (string, error)
	Name() string
	Model() string
}
