package commonModels

type DocType string

const (
	PDF  DocType = "PDF"
	DOCX DocType = "DOCX"
	TXT  DocType = "TXT"
	ERR  DocType = "ERROR"
)

// Extension is the lower-case file extension a DocType is accepted under.
func (d DocType) Extension() string {
	switch d {
	case PDF:
		return "pdf"
	case DOCX:
		return "docx"
	case TXT:
		return "txt"
	default:
		return ""
	}
}

// UploadedDocument is a client upload backed by a transient file in the upload folder.
type UploadedDocument struct {
	Id         string  `json:"id"`
	Filename   string  `json:"filename"`
	Extension  string  `json:"extension"`
	StoredPath string  `json:"-"`
	SizeBytes  int64   `json:"size_bytes"`
	Type       DocType `json:"type"`
}

type ExtractedText struct {
	Content      string  `json:"content"`
	SourceFormat DocType `json:"source_format"`
}

type ValidationOutcome struct {
	Accepted bool   `json:"accepted"`
	Text     string `json:"text,omitempty"`
	Reason   Reason `json:"reason,omitempty"`
}

type PipelineState string

const (
	StateReceived      PipelineState = "RECEIVED"
	StateClassified    PipelineState = "CLASSIFIED"
	StateExtracted     PipelineState = "EXTRACTED"
	StateValidated     PipelineState = "VALIDATED"
	StateDone          PipelineState = "DONE"
	StateRejected      PipelineState = "REJECTED"
	StateExtractFailed PipelineState = "EXTRACT_FAILED"
)

func (s PipelineState) IsTerminal() bool {
	return s == StateDone || s == StateRejected || s == StateExtractFailed
}
