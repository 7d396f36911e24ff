package pipeline

import (
	"context"
	"fmt"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/metrics"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

// DocumentStore is the transient storage an uploaded document lives in while it is processed.
type DocumentStore interface {
	Read(doc commonModels.UploadedDocument) ([]byte, error)
	Release(doc commonModels.UploadedDocument) error
}

type Result struct {
	Text   string
	Format commonModels.DocType
	State  commonModels.PipelineState
}

type Pipeline struct {
	store      DocumentStore
	extractors Extractors
	validator  Validator
	logger     *logger_i.Logger
}

func New(store DocumentStore, extractors Extractors, validator Validator) *Pipeline {
	return &Pipeline{
		store:      store,
		extractors: extractors,
		validator:  validator,
		logger:     logger_i.NewLogger("Pipeline"),
	}
}

// Process runs classify, extract and validate over doc. The backing file is released before
// Process returns, whatever the outcome.
func (p *Pipeline) Process(ctx context.Context, doc commonModels.UploadedDocument) (res Result, err error) {
	log := p.logger.WithTrace(ctx).With("documentId", doc.Id, "filename", doc.Filename)
	res.State = commonModels.StateReceived

	defer func() {
		if releaseErr := p.store.Release(doc); releaseErr != nil {
			log.Error("could not release upload", "error", releaseErr)
		}
		if err != nil {
			res.State = commonModels.AsDocumentError(err).State
		}
		metrics.CapturePipelineOutcome(string(res.State))
		log.Debug("pipeline finished", "state", res.State)
	}()

	docType, err := Classify(doc.Filename)
	if err != nil {
		log.Warn("rejected file type", "extension", Extension(doc.Filename))
		return res, err
	}
	res.Format = docType
	res.State = commonModels.StateClassified

	data, err := p.store.Read(doc)
	if err != nil {
		return res, commonModels.NewFilesystemError(commonModels.MsgStorage, fmt.Errorf("read upload: %w", err))
	}
	if err = ctx.Err(); err != nil {
		return res, commonModels.NewFilesystemError("Request cancelled", err)
	}

	extracted, err := p.extractors.Extract(docType, data)
	if err != nil {
		log.Error("extraction failed", "format", docType, "error", err)
		return res, err
	}
	res.State = commonModels.StateExtracted

	outcome := p.validator.Validate(extracted.Content)
	if !outcome.Accepted {
		log.Warn("extracted text rejected", "reason", outcome.Reason)
		if outcome.Reason == commonModels.ReasonTooLong {
			return res, commonModels.NewInputError(outcome.Reason, commonModels.StateRejected,
				fmt.Sprintf(commonModels.MsgTooLong, p.validator.MaxChars()))
		}
		return res, commonModels.NewInputError(outcome.Reason, commonModels.StateRejected, commonModels.MsgTooShort)
	}
	res.State = commonModels.StateValidated

	res.Text = outcome.Text
	res.State = commonModels.StateDone
	return res, nil
}
