package adapter

import (
	"github.com/vineethbhatalevoor/AILegalsummary/internal/api"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/summary"
)

func ToSummarizeResponse(res summary.Result) api.SummarizeResponse {
	return api.SummarizeResponse{
		Success:  true,
		Summary:  res.Summary,
		Filename: res.Filename,
	}
}

func BadRequest(message string) api.ErrorResponse {
	return api.ErrorResponse{Error: message}
}

func ToLanguagesResponse(langs []summaryModel.Language) api.LanguagesResponse {
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		out = append(out, string(l))
	}
	return api.LanguagesResponse{Languages: out, Default: string(summaryModel.English)}
}
