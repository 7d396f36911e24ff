package commonModels

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type ErrorKind string

const (
	KindInput         ErrorKind = "INPUT"
	KindPayload       ErrorKind = "PAYLOAD_TOO_LARGE"
	KindExtraction    ErrorKind = "EXTRACTION"
	KindSummarization ErrorKind = "SUMMARIZATION_SERVICE"
	KindFilesystem    ErrorKind = "FILESYSTEM"
)

type Reason string

const (
	ReasonNoFile          Reason = "no-file"
	ReasonEmptyFilename   Reason = "empty-filename"
	ReasonInvalidFileType Reason = "invalid-file-type"
	ReasonTooShort        Reason = "empty-or-too-short"
	ReasonTooLong         Reason = "too-long"
	ReasonTooLarge        Reason = "too-large"
)

// client facing messages
const (
	MsgNoFile          = "No file provided"
	MsgEmptyFilename   = "No file selected"
	MsgInvalidFileType = "Invalid file type. Please upload PDF, DOCX, or TXT file"
	MsgTooShort        = "Could not extract meaningful text from the document"
	MsgTooLarge        = "File too large. Maximum upload size is %d MB"
	MsgTooLong         = "Document is too long to summarize. Maximum is %d characters"
	MsgStorage         = "Could not store the uploaded file"
)

// DocumentError is the single error type the upload flow returns. Kind picks the HTTP status,
// Message is safe to show to clients and Err keeps the cause for logs.
type DocumentError struct {
	Kind    ErrorKind
	Reason  Reason
	State   PipelineState
	Format  DocType
	Message string
	Err     error
}

func (e *DocumentError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Reason != "" {
		b.WriteString("(" + string(e.Reason) + ")")
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

func (e *DocumentError) HTTPStatus() int {
	switch e.Kind {
	case KindInput:
		return http.StatusBadRequest
	case KindPayload:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func NewInputError(reason Reason, state PipelineState, message string) *DocumentError {
	return &DocumentError{Kind: KindInput, Reason: reason, State: state, Message: message}
}

func NewPayloadTooLargeError(maxBytes int64) *DocumentError {
	return &DocumentError{
		Kind:    KindPayload,
		Reason:  ReasonTooLarge,
		State:   StateRejected,
		Message: fmt.Sprintf(MsgTooLarge, maxBytes>>20),
	}
}

// NewExtractionError keeps the "Error extracting PDF: <cause>" message shape clients already rely on.
func NewExtractionError(format DocType, cause error) *DocumentError {
	msg := fmt.Sprintf("Error extracting %s", format)
	if cause != nil {
		msg = msg + ": " + cause.Error()
	}
	return &DocumentError{
		Kind:    KindExtraction,
		State:   StateExtractFailed,
		Format:  format,
		Message: msg,
		Err:     cause,
	}
}

func NewSummarizationError(clientMessage string, cause error) *DocumentError {
	return &DocumentError{
		Kind:    KindSummarization,
		State:   StateValidated,
		Message: clientMessage,
		Err:     cause,
	}
}

func NewFilesystemError(message string, cause error) *DocumentError {
	return &DocumentError{Kind: KindFilesystem, State: StateReceived, Message: message, Err: cause}
}

// AsDocumentError unwraps err into a DocumentError, wrapping unknown errors as filesystem failures.
func AsDocumentError(err error) *DocumentError {
	var docErr *DocumentError
	if errors.As(err, &docErr) {
		return docErr
	}
	return NewFilesystemError("Internal server error", err)
}
