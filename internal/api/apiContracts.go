package api

// responses---------------------

type SummarizeResponse struct {
	Success  bool   `json:"success" example:"true"`
	Summary  string `json:"summary" example:"<h2>Summary</h2><p><strong>Parties:</strong> Lessor and Lessee</p>"`
	Filename string `json:"filename" example:"lease_agreement.pdf"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid file type. Please upload PDF, DOCX, or TXT file"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Provider string `json:"provider,omitempty" example:"gemini"`
	Cache    string `json:"cache,omitempty" example:"redis"`
}

type LanguagesResponse struct {
	Languages []string `json:"languages" example:"english,hindi,kannada"`
	Default   string   `json:"default" example:"english"`
}
