package storage

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
)

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"contract.pdf", "contract.pdf"},
		{"My Lease Agreement.docx", "My_Lease_Agreement.docx"},
		{"../../etc/passwd.txt", "etc_passwd.txt"},
		{`..\..\windows\notes.txt`, "windows_notes.txt"},
		{"résumé.pdf", "resume.pdf"},
		{"  .hidden.txt", "hidden.txt"},
		{"con.txt", "_con.txt"},
		{"दस्तावेज़", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SecureFilename(tt.in))
		})
	}
}

func TestStoredName(t *testing.T) {
	assert.Equal(t, "Report.PDF", StoredName("Report.PDF", commonModels.PDF))
	assert.Equal(t, "document.pdf", StoredName("दस्तावेज़.pdf", commonModels.PDF))
	assert.Equal(t, "notes.txt", StoredName("notes.txt", commonModels.TXT))
}

func TestTempStore_SaveReadRelease(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTempStore(dir, 1024)
	require.NoError(t, err)

	doc, err := store.Save(strings.NewReader("The tenant agrees to the terms."), "lease.txt", commonModels.TXT)
	require.NoError(t, err)

	assert.Equal(t, "lease.txt", doc.Filename)
	assert.Equal(t, "txt", doc.Extension)
	assert.Equal(t, int64(31), doc.SizeBytes)
	assert.True(t, strings.HasSuffix(doc.StoredPath, "_lease.txt"))

	data, err := store.Read(doc)
	require.NoError(t, err)
	assert.Equal(t, "The tenant agrees to the terms.", string(data))

	require.NoError(t, store.Release(doc))
	require.NoError(t, store.Release(doc), "second release is a no-op")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTempStore_SameNameDoesNotCollide(t *testing.T) {
	store, err := NewTempStore(t.TempDir(), 1024)
	require.NoError(t, err)

	first, err := store.Save(strings.NewReader("first upload body"), "contract.txt", commonModels.TXT)
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("second upload body"), "contract.txt", commonModels.TXT)
	require.NoError(t, err)

	assert.NotEqual(t, first.StoredPath, second.StoredPath)

	a, _ := store.Read(first)
	b, _ := store.Read(second)
	assert.Equal(t, "first upload body", string(a))
	assert.Equal(t, "second upload body", string(b))
}

func TestTempStore_TooLarge(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTempStore(dir, 8)
	require.NoError(t, err)

	_, err = store.Save(bytes.NewReader(make([]byte, 9)), "big.txt", commonModels.TXT)
	var docErr *commonModels.DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, commonModels.KindPayload, docErr.Kind)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries, "partial upload must be removed")
}

func TestTempStore_RejectsForeignPath(t *testing.T) {
	store, err := NewTempStore(t.TempDir(), 0)
	require.NoError(t, err)

	_, err = store.Read(commonModels.UploadedDocument{StoredPath: "/etc/passwd"})
	assert.Error(t, err)
}
