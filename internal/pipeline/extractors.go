package pipeline

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/metrics"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

const docxBodyPart = "word/document.xml"

// Extractor turns the raw bytes of one format into text. Implementations hold no per-call state.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// Extractors is the closed set of format extractors, one per accepted DocType.
type Extractors struct {
	pdf  Extractor
	docx Extractor
	txt  Extractor
}

func NewExtractors(pdfPageTimeout time.Duration) Extractors {
	return Extractors{
		pdf:  pdfExtractor{pageTimeout: pdfPageTimeout, logger: logger_i.NewLogger("PdfExtractor")},
		docx: docxExtractor{},
		txt:  txtExtractor{},
	}
}

// Extract dispatches on docType. Any failure comes back as an extraction DocumentError.
func (e Extractors) Extract(docType commonModels.DocType, data []byte) (commonModels.ExtractedText, error) {
	start := time.Now()
	defer func() { metrics.CaptureExtractionMetrics(string(docType), time.Since(start)) }()

	var extractor Extractor
	switch docType {
	case commonModels.PDF:
		extractor = e.pdf
	case commonModels.DOCX:
		extractor = e.docx
	case commonModels.TXT:
		extractor = e.txt
	default:
		return commonModels.ExtractedText{}, commonModels.NewExtractionError(docType, fmt.Errorf("unsupported format %q", docType))
	}

	text, err := extractor.Extract(data)
	if err != nil {
		return commonModels.ExtractedText{}, commonModels.NewExtractionError(docType, err)
	}
	return commonModels.ExtractedText{Content: text, SourceFormat: docType}, nil
}

type txtExtractor struct{}

func (txtExtractor) Extract(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("file is not valid UTF-8 text")
	}
	return string(data), nil
}

type docxExtractor struct{}

func (docxExtractor) Extract(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != docxBodyPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", docxBodyPart, err)
		}
		defer rc.Close()
		paragraphs, err := bodyParagraphs(rc)
		if err != nil {
			return "", err
		}
		return strings.Join(paragraphs, "\n"), nil
	}
	return "", fmt.Errorf("docx has no %s", docxBodyPart)
}

// bodyParagraphs returns the text of every w:p that is a direct child of w:body, in order.
// Runs contribute w:t text, w:tab as a tab and w:br / w:cr as a newline. Tables and text
// boxes are not body paragraphs and are skipped.
func bodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var (
		stack      []string
		paragraphs []string
		current    strings.Builder
		inPara     bool
		paraDepth  int
		inText     bool
		sawBody    bool
	)
	parent := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}
	inTextBox := func() bool {
		for _, name := range stack[paraDepth:] {
			if name == "txbxContent" {
				return true
			}
		}
		return false
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed docx xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			switch {
			case name == "body":
				sawBody = true
			case name == "p" && parent() == "body":
				inPara = true
				paraDepth = len(stack) + 1
				current.Reset()
			case inPara && parent() == "r" && !inTextBox():
				switch name {
				case "t":
					inText = true
				case "tab":
					current.WriteByte('\t')
				case "br", "cr":
					current.WriteByte('\n')
				}
			}
			stack = append(stack, name)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New("malformed docx xml: unbalanced element")
			}
			stack = stack[:len(stack)-1]
			switch {
			case t.Name.Local == "t":
				inText = false
			case t.Name.Local == "p" && inPara && len(stack) == paraDepth-1:
				paragraphs = append(paragraphs, current.String())
				inPara = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	if !sawBody {
		return nil, errors.New("docx document has no body")
	}
	return paragraphs, nil
}
