package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

// TempStore keeps uploads on disk only for the lifetime of one request.
type TempStore struct {
	dir      string
	maxBytes int64
	logger   *logger_i.Logger
}

func NewTempStore(dir string, maxBytes int64) (*TempStore, error) {
	if dir == "" {
		return nil, errors.New("upload folder is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload folder: %w", err)
	}
	if err := os.MkdirAll(abs, 0750); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}
	return &TempStore{dir: abs, maxBytes: maxBytes, logger: logger_i.NewLogger("TempStore")}, nil
}

func (s *TempStore) Dir() string {
	return s.dir
}

// Save copies body into a uniquely named file. The returned document always has a sanitised
// Filename; StoredPath is never derived from the raw client name.
func (s *TempStore) Save(body io.Reader, filename string, docType commonModels.DocType) (commonModels.UploadedDocument, error) {
	id := uuid.New().String()
	safeName := StoredName(filename, docType)
	path := filepath.Join(s.dir, id+"_"+safeName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return commonModels.UploadedDocument{}, commonModels.NewFilesystemError(commonModels.MsgStorage, err)
	}

	limit := s.maxBytes
	if limit <= 0 {
		limit = 1<<63 - 1
	} else {
		limit++
	}
	written, copyErr := io.Copy(f, io.LimitReader(body, limit))
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		s.remove(path)
		var maxErr *http.MaxBytesError
		if errors.As(copyErr, &maxErr) {
			return commonModels.UploadedDocument{}, commonModels.NewPayloadTooLargeError(s.maxBytes)
		}
		return commonModels.UploadedDocument{}, commonModels.NewFilesystemError(commonModels.MsgStorage, copyErr)
	case closeErr != nil:
		s.remove(path)
		return commonModels.UploadedDocument{}, commonModels.NewFilesystemError(commonModels.MsgStorage, closeErr)
	case s.maxBytes > 0 && written > s.maxBytes:
		s.remove(path)
		return commonModels.UploadedDocument{}, commonModels.NewPayloadTooLargeError(s.maxBytes)
	}

	s.logger.Debug("stored upload", "id", id, "filename", safeName, "bytes", written)
	return commonModels.UploadedDocument{
		Id:         id,
		Filename:   safeName,
		Extension:  docType.Extension(),
		StoredPath: path,
		SizeBytes:  written,
		Type:       docType,
	}, nil
}

func (s *TempStore) Read(doc commonModels.UploadedDocument) ([]byte, error) {
	if !s.owns(doc.StoredPath) {
		return nil, fmt.Errorf("path %q is outside the upload folder", doc.StoredPath)
	}
	return os.ReadFile(doc.StoredPath)
}

// Release removes the backing file. Releasing twice is not an error.
func (s *TempStore) Release(doc commonModels.UploadedDocument) error {
	if doc.StoredPath == "" {
		return nil
	}
	if !s.owns(doc.StoredPath) {
		return fmt.Errorf("path %q is outside the upload folder", doc.StoredPath)
	}
	if err := os.Remove(doc.StoredPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Error("could not remove upload", "path", doc.StoredPath, "error", err)
		return err
	}
	return nil
}

func (s *TempStore) owns(path string) bool {
	rel, err := filepath.Rel(s.dir, path)
	return err == nil && rel != "." && !strings.HasPrefix(rel, "..") && !strings.ContainsRune(rel, filepath.Separator)
}

func (s *TempStore) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Error("could not remove partial upload", "path", path, "error", err)
	}
}
