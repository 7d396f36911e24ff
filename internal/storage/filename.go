package storage

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	windowsDeviceNames  = map[string]struct{}{
		"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
		"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
		"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
	}
)

// asciiFold builds a fresh chain per call; transform.Chain keeps internal buffers.
func asciiFold() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
}

// SecureFilename reduces a client supplied name to a flat ASCII file name that is safe to join
// onto a directory. It can return an empty string.
func SecureFilename(name string) string {
	folded, _, err := transform.String(asciiFold(), name)
	if err != nil {
		folded = ""
	}
	folded = strings.NewReplacer("/", " ", "\\", " ").Replace(folded)
	folded = strings.Join(strings.Fields(folded), "_")
	folded = unsafeFilenameChars.ReplaceAllString(folded, "")
	folded = strings.Trim(folded, "._")

	if folded != "" {
		base := strings.ToUpper(strings.SplitN(folded, ".", 2)[0])
		if _, reserved := windowsDeviceNames[base]; reserved {
			folded = "_" + folded
		}
	}
	return folded
}

// StoredName is SecureFilename with a guaranteed extension matching docType, so a name like
// "दस्तावेज़.pdf" still ends up as a usable "document.pdf".
func StoredName(name string, docType commonModels.DocType) string {
	safe := SecureFilename(name)
	ext := docType.Extension()
	if ext == "" {
		if safe == "" {
			return "document"
		}
		return safe
	}
	if safe == "" || strings.ToLower(strings.TrimPrefix(path.Ext(safe), ".")) != ext {
		stem := strings.TrimSuffix(safe, path.Ext(safe))
		if stem == "" || strings.EqualFold(safe, ext) {
			stem = "document"
		}
		return stem + "." + ext
	}
	return safe
}
