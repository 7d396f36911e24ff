package commonModels

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *DocumentError
		want int
	}{
		{"input", NewInputError(ReasonInvalidFileType, StateRejected, MsgInvalidFileType), http.StatusBadRequest},
		{"too large", NewPayloadTooLargeError(16 << 20), http.StatusRequestEntityTooLarge},
		{"extraction", NewExtractionError(PDF, errors.New("bad xref")), http.StatusInternalServerError},
		{"summarization", NewSummarizationError("Summarization service error", nil), http.StatusInternalServerError},
		{"filesystem", NewFilesystemError(MsgStorage, errors.New("disk full")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestNewExtractionError_Message(t *testing.T) {
	cause := errors.New("malformed PDF: missing xref")
	err := NewExtractionError(PDF, cause)

	assert.Equal(t, "Error extracting PDF: malformed PDF: missing xref", err.Message)
	assert.Equal(t, StateExtractFailed, err.State)
	assert.ErrorIs(t, err, cause)
}

func TestNewPayloadTooLargeError_Message(t *testing.T) {
	err := NewPayloadTooLargeError(16 << 20)
	assert.Equal(t, "File too large. Maximum upload size is 16 MB", err.Message)
}

func TestAsDocumentError(t *testing.T) {
	inner := NewInputError(ReasonTooShort, StateRejected, MsgTooShort)
	wrapped := fmt.Errorf("process: %w", inner)

	assert.Same(t, inner, AsDocumentError(wrapped))

	plain := AsDocumentError(errors.New("boom"))
	assert.Equal(t, KindFilesystem, plain.Kind)
	assert.Equal(t, http.StatusInternalServerError, plain.HTTPStatus())
}
