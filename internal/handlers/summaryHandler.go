package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/adapter"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/api"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/summary"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

// multipart parts above this size spill to disk instead of memory
const multipartMemory = 1 << 20

type SummaryHandler struct {
	service      summary.Service
	maxBytes     int64
	providerName string
	cacheBackend string
	logger       *logger_i.Logger
}

type HandlerConfig struct {
	Service      summary.Service
	MaxBytes     int64
	ProviderName string
	CacheBackend string
}

func NewSummaryHandler(cfg HandlerConfig) *SummaryHandler {
	return &SummaryHandler{
		service:      cfg.Service,
		maxBytes:     cfg.MaxBytes,
		providerName: cfg.ProviderName,
		cacheBackend: cfg.CacheBackend,
		logger:       logger_i.NewLogger("SummaryHandler"),
	}
}

// SummarizeHandler godoc
// @Summary      Summarize a legal document
// @Description  Accepts a PDF, DOCX or TXT upload, extracts its text and returns an HTML summary in the requested language.
// @Tags         Summarize
// @Accept       multipart/form-data
// @Produce      json
// @Param        file      formData  file    true   "The PDF, DOCX or TXT document"
// @Param        language  formData  string  false  "english, hindi or kannada (default english)"
// @Success      200  {object}  api.SummarizeResponse  "Summary generated"
// @Failure      400  {object}  api.ErrorResponse      "Missing file, bad file type or no meaningful text"
// @Failure      413  {object}  api.ErrorResponse      "Upload larger than the configured ceiling"
// @Failure      429  {object}  api.ErrorResponse      "Rate limit exceeded"
// @Failure      500  {object}  api.ErrorResponse      "Extraction, summarization or storage failure"
// @Router       /summarize [post]
func (h *SummaryHandler) SummarizeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		h.logger.Warn("Invalid Context by request", "remote", r.RemoteAddr)
		return
	}
	log := h.logger.WithTrace(r.Context())

	if h.maxBytes > 0 {
		if r.ContentLength > h.maxBytes {
			writeDocumentError(w, commonModels.NewPayloadTooLargeError(h.maxBytes))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if isTooLarge(err) {
			writeDocumentError(w, commonModels.NewPayloadTooLargeError(h.maxBytes))
			return
		}
		log.Warn("Bad multipart request", "error", err)
		writeDocumentError(w, commonModels.NewInputError(commonModels.ReasonNoFile, commonModels.StateReceived, commonModels.MsgNoFile))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Error("Couldn't remove multipart temp files", "error", err)
		}
	}()

	header, err := formFile(r.MultipartForm)
	if err != nil {
		writeDocumentError(w, err)
		return
	}
	file, err := header.Open()
	if err != nil {
		writeDocumentError(w, commonModels.NewFilesystemError(commonModels.MsgStorage, err))
		return
	}
	defer file.Close()

	res, err := h.service.Summarize(r.Context(), summary.Request{
		Filename: header.Filename,
		Body:     file,
		Language: firstValue(r.MultipartForm, "language"),
	})
	if err != nil {
		writeDocumentError(w, err)
		return
	}
	log.Debug("summary ready", "filename", res.Filename, "language", res.Language, "cacheHit", res.CacheHit)
	writeJsonResponse(w, http.StatusOK, adapter.ToSummarizeResponse(res))
}

// HealthHandler godoc
// @Summary      Liveness check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /healthz [get]
func (h *SummaryHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{Status: "ok", Provider: h.providerName, Cache: h.cacheBackend})
}

// LanguagesHandler godoc
// @Summary      Supported summary languages
// @Tags         Summarize
// @Produce      json
// @Success      200  {object}  api.LanguagesResponse
// @Router       /languages [get]
func (h *SummaryHandler) LanguagesHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, adapter.ToLanguagesResponse(summaryModel.SupportedLanguages()))
}

// formFile returns the "file" part. A browser that submits the form without choosing a file
// still sends the part, but with an empty filename, which multipart files under Value.
func formFile(form *multipart.Form) (*multipart.FileHeader, error) {
	if files := form.File["file"]; len(files) > 0 {
		if files[0].Filename == "" {
			return nil, commonModels.NewInputError(commonModels.ReasonEmptyFilename, commonModels.StateReceived, commonModels.MsgEmptyFilename)
		}
		return files[0], nil
	}
	if _, sent := form.Value["file"]; sent {
		return nil, commonModels.NewInputError(commonModels.ReasonEmptyFilename, commonModels.StateReceived, commonModels.MsgEmptyFilename)
	}
	return nil, commonModels.NewInputError(commonModels.ReasonNoFile, commonModels.StateReceived, commonModels.MsgNoFile)
}

func firstValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}
