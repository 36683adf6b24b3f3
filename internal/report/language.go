package report

import (
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/idelchi/projstat/internal/projstat"
)

// Language returns the name of the programming language chroma associates with
// a file type, or "" when none is known. Composite types are looked up through
// their member extensions in order.
func Language(fileType string, types projstat.TypeMap) string {
	exts := []string{fileType}
	if members, ok := types.Lookup(fileType); ok && len(members) > 0 {
		exts = members
	}

	for _, ext := range exts {
		if ext == "" {
			continue
		}

		if lexer := lexers.Match("file." + ext); lexer != nil {
			return lexer.Config().Name
		}
	}

	return ""
}
