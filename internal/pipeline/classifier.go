package pipeline

import (
	"strings"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/commonModels"
)

// Extension returns the lower-case text after the last '.' or "" when the name has none.
func Extension(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// Classify maps a client filename onto one of the accepted formats.
func Classify(filename string) (commonModels.DocType, error) {
	switch Extension(filename) {
	case "pdf":
		return commonModels.PDF, nil
	case "docx":
		return commonModels.DOCX, nil
	case "txt":
		return commonModels.TXT, nil
	default:
		return commonModels.ERR, commonModels.NewInputError(
			commonModels.ReasonInvalidFileType, commonModels.StateRejected, commonModels.MsgInvalidFileType)
	}
}
