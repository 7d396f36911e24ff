package mcpserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/handlers"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/summary"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

const (
	serverName = "legal-summarizer"
	ToolName   = "summarize_legal_document"

	// room for the JSON-RPC envelope, the filename and the language around the encoded document
	envelopeOverhead = 64 << 10
)

type SummarizeInput struct {
	Filename      string `json:"filename" jsonschema:"document name including its .pdf, .docx or .txt extension"`
	ContentBase64 string `json:"content_base64" jsonschema:"the document bytes, standard base64 encoded"`
	Language      string `json:"language,omitempty" jsonschema:"english, hindi or kannada. Anything else means english"`
}

type SummarizeOutput struct {
	Summary  string `json:"summary" jsonschema:"HTML summary of the document"`
	Filename string `json:"filename" jsonschema:"the stored name of the document"`
}

// Tools exposes the summary service to MCP clients.
type Tools struct {
	service  summary.Service
	maxBytes int64
	logger   *logger_i.Logger
}

func NewTools(service summary.Service, maxBytes int64) *Tools {
	return &Tools{service: service, maxBytes: maxBytes, logger: logger_i.NewLogger("MCP")}
}

// Summarize decodes the document and runs it through the same flow as POST /summarize.
// Document errors come back as tool errors carrying the client message only.
func (t *Tools) Summarize(ctx context.Context, _ *mcp.CallToolRequest, in SummarizeInput) (*mcp.CallToolResult, SummarizeOutput, error) {
	encoded := strings.TrimSpace(in.ContentBase64)
	if encoded == "" {
		return toolError(commonModels.NewInputError(commonModels.ReasonNoFile, commonModels.StateReceived, commonModels.MsgNoFile))
	}
	if t.maxBytes > 0 && int64(base64.StdEncoding.DecodedLen(len(encoded))) > t.maxBytes+2 {
		return toolError(commonModels.NewPayloadTooLargeError(t.maxBytes))
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.logger.WithTrace(ctx).Warn("undecodable document", "error", err)
		return toolError(commonModels.NewInputError(commonModels.ReasonNoFile, commonModels.StateReceived, "content_base64 is not valid base64"))
	}
	if t.maxBytes > 0 && int64(len(data)) > t.maxBytes {
		return toolError(commonModels.NewPayloadTooLargeError(t.maxBytes))
	}

	res, err := t.service.Summarize(ctx, summary.Request{
		Filename: in.Filename,
		Body:     bytes.NewReader(data),
		Language: in.Language,
	})
	if err != nil {
		return toolError(err)
	}
	return nil, SummarizeOutput{Summary: res.Summary, Filename: res.Filename}, nil
}

func toolError(err error) (*mcp.CallToolResult, SummarizeOutput, error) {
	docErr := commonModels.AsDocumentError(err)
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: docErr.Message}},
	}, SummarizeOutput{}, nil
}

func NewServer(tools *Tools, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Summarize a PDF, DOCX or TXT legal document in English, Hindi or Kannada.",
	}, tools.Summarize)
	return server
}

// BodyLimit is the largest request body /mcp accepts: a base64 encoded document of maxBytes plus
// the envelope. Zero means no limit.
func BodyLimit(maxBytes int64) int64 {
	if maxBytes <= 0 {
		return 0
	}
	return int64(base64.StdEncoding.EncodedLen(int(maxBytes))) + envelopeOverhead
}

// Handler serves the server over streamable HTTP. Bodies above BodyLimit are cut off before the
// SDK decodes them.
func Handler(server *mcp.Server, maxBytes int64) http.Handler {
	inner := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	limit := BodyLimit(maxBytes)
	if limit == 0 {
		return inner
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > limit {
			handlers.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, commonModels.NewPayloadTooLargeError(maxBytes).Message)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		inner.ServeHTTP(w, r)
	})
}
