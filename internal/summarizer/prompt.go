package summarizer

import (
	"fmt"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
)

const systemInstructionTemplate = `You are an expert legal document analyst. Your task is to summarize legal documents in %[1]s.

Instructions:
1. Provide a clear, concise summary of the document
2. Highlight key legal points, clauses, and obligations
3. Identify important parties, dates, and terms
4. Maintain professional legal terminology
5. Structure the summary with clear sections
6. Respond entirely in %[1]s`

const userPromptPrefix = "Please provide a comprehensive legal summary of the following document in clean HTML format with proper headings, bold labels, and bullet points:\n\n"

// Prompt is the full request sent to a model for one document.
type Prompt struct {
	System string
	User   string
}

func BuildPrompt(text string, lang summaryModel.Language) Prompt {
	name := lang.DisplayName()
	return Prompt{
		System: fmt.Sprintf(systemInstructionTemplate, name),
		User:   userPromptPrefix + text,
	}
}
