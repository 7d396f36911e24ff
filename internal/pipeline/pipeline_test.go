package pipeline_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/pipeline"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/storage"
)

func newPipeline(t *testing.T) (*pipeline.Pipeline, *storage.TempStore) {
	t.Helper()
	store, err := storage.NewTempStore(t.TempDir(), 1<<20)
	require.NoError(t, err)
	return pipeline.New(store, pipeline.NewExtractors(time.Second), pipeline.NewValidator(10, 0)), store
}

func assertNoResidue(t *testing.T, store *storage.TempStore) {
	t.Helper()
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "upload folder must be empty after processing")
}

func TestProcess_Scenarios(t *testing.T) {
	fifty := "This lease is made between the Lessor and Lessee.\n"
	tests := []struct {
		name          string
		filename      string
		docType       commonModels.DocType
		body          string
		expectedState commonModels.PipelineState
		expectedKind  commonModels.ErrorKind
		expectedText  string
	}{
		{
			name:          "Success_Txt_Untrimmed",
			filename:      "lease.txt",
			docType:       commonModels.TXT,
			body:          fifty,
			expectedState: commonModels.StateDone,
			expectedText:  fifty,
		},
		{
			name:          "Rejected_Too_Short",
			filename:      "tiny.txt",
			docType:       commonModels.TXT,
			body:          "ok",
			expectedState: commonModels.StateRejected,
			expectedKind:  commonModels.KindInput,
		},
		{
			name:          "Rejected_Whitespace_Only",
			filename:      "blank.txt",
			docType:       commonModels.TXT,
			body:          "   \n\n   ",
			expectedState: commonModels.StateRejected,
			expectedKind:  commonModels.KindInput,
		},
		{
			name:          "Rejected_File_Type",
			filename:      "payload.exe",
			docType:       commonModels.ERR,
			body:          "MZ binary content here",
			expectedState: commonModels.StateRejected,
			expectedKind:  commonModels.KindInput,
		},
		{
			name:          "Extract_Failed_Docx",
			filename:      "broken.docx",
			docType:       commonModels.DOCX,
			body:          "not a zip archive at all",
			expectedState: commonModels.StateExtractFailed,
			expectedKind:  commonModels.KindExtraction,
		},
		{
			name:          "Extract_Failed_Txt",
			filename:      "latin1.txt",
			docType:       commonModels.TXT,
			body:          "caf\xe9 au lait contract",
			expectedState: commonModels.StateExtractFailed,
			expectedKind:  commonModels.KindExtraction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, store := newPipeline(t)
			doc, err := store.Save(strings.NewReader(tt.body), tt.filename, tt.docType)
			require.NoError(t, err)

			res, err := p.Process(context.Background(), doc)

			assert.Equal(t, tt.expectedState, res.State)
			if tt.expectedKind == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedText, res.Text)
			} else {
				var docErr *commonModels.DocumentError
				require.True(t, errors.As(err, &docErr), "expected DocumentError, got %v", err)
				assert.Equal(t, tt.expectedKind, docErr.Kind)
				assert.Empty(t, res.Text)
			}
			assertNoResidue(t, store)
		})
	}
}

func TestProcess_TooShortMessage(t *testing.T) {
	p, store := newPipeline(t)
	doc, err := store.Save(strings.NewReader("ok"), "tiny.txt", commonModels.TXT)
	require.NoError(t, err)

	_, err = p.Process(context.Background(), doc)
	var docErr *commonModels.DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, commonModels.ReasonTooShort, docErr.Reason)
	assert.Equal(t, commonModels.MsgTooShort, docErr.Message)
}

func TestProcess_MissingBackingFile(t *testing.T) {
	p, store := newPipeline(t)
	doc, err := store.Save(strings.NewReader("some contract text"), "gone.txt", commonModels.TXT)
	require.NoError(t, err)
	require.NoError(t, os.Remove(doc.StoredPath))

	_, err = p.Process(context.Background(), doc)
	var docErr *commonModels.DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, commonModels.KindFilesystem, docErr.Kind)
}

func TestProcess_LengthCap(t *testing.T) {
	store, err := storage.NewTempStore(t.TempDir(), 1<<20)
	require.NoError(t, err)
	p := pipeline.New(store, pipeline.NewExtractors(time.Second), pipeline.NewValidator(10, 20))

	doc, err := store.Save(strings.NewReader(strings.Repeat("clause ", 10)), "long.txt", commonModels.TXT)
	require.NoError(t, err)

	_, err = p.Process(context.Background(), doc)
	var docErr *commonModels.DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, commonModels.ReasonTooLong, docErr.Reason)
	assertNoResidue(t, store)
}
