package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/config"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
	"golang.org/x/sync/semaphore"
)

var (
	errPageTimeout = errors.New("page extraction timed out")
	errWorkersBusy = errors.New("no pdf worker available")

	pageWorkers = semaphore.NewWeighted(config.PdfPageWorkers)
)

// pageSource is the part of a paginated document the PDF extractor needs. Page numbers start at 1.
type pageSource interface {
	NumPage() int
	PageText(i int) (text string, ok bool, err error)
}

type pdfPages struct {
	reader *pdf.Reader
}

func (p pdfPages) NumPage() int {
	return p.reader.NumPage()
}

func (p pdfPages) PageText(i int) (string, bool, error) {
	page := p.reader.Page(i)
	if page.V.IsNull() {
		return "", false, nil
	}
	text, err := page.GetPlainText(nil)
	return text, true, err
}

type pdfExtractor struct {
	pageTimeout time.Duration
	logger      *logger_i.Logger
}

func (e pdfExtractor) Extract(data []byte) (text string, err error) {
	reader, err := openPDF(data)
	if err != nil {
		return "", err
	}
	return joinPages(pdfPages{reader: reader}, e.pageTimeout, e.logger)
}

func openPDF(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader, err = nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	reader, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	if reader.NumPage() < 1 {
		return nil, errors.New("pdf has no pages")
	}
	return reader, nil
}

// joinPages concatenates page text in page order with no separator. A null page contributes
// nothing; a page that fails, panics or runs past the timeout fails the whole document.
func joinPages(src pageSource, timeout time.Duration, logger *logger_i.Logger) (string, error) {
	var b strings.Builder
	numPages := src.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		content, err := protectExtract(src, i, timeout)
		if err != nil {
			logger.Warn("Error parsing page content", "page", i, "error", err)
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(content)
	}
	return b.String(), nil
}

// protectExtract runs one page on a worker slot. A worker that outlives the timeout is abandoned
// but keeps its slot until it returns, so stalled pages can never exceed the pool size.
func protectExtract(src pageSource, i int, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		return pageText(src, i)
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	workers := pageWorkers
	if err := workers.Acquire(ctx, 1); err != nil {
		return "", errWorkersBusy
	}

	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)
	go func() {
		defer workers.Release(1)
		content, err := pageText(src, i)
		resChan <- result{content, err}
	}()

	select {
	case r := <-resChan:
		return r.content, r.err
	case <-ctx.Done():
		return "", errPageTimeout
	}
}

func pageText(src pageSource, i int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed page: %v", r)
		}
	}()
	content, ok, err := src.PageText(i)
	if !ok && err == nil {
		return "", nil
	}
	return content, err
}
