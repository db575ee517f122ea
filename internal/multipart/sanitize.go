package multipart

import (
	"path"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/peerlink/internal/common"
)

const maxFilenameLen = 255

// SanitizeFilename reduces an untrusted filename to a single safe path
// element. Directory parts, control characters and quotes are dropped; a
// name that ends up empty becomes common.UnnamedFile.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)

	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '"' || r == '/' {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	if name == "" || name == "." || name == ".." {
		return common.UnnamedFile
	}

	if len(name) > maxFilenameLen {
		name = truncateUTF8(name, maxFilenameLen)
	}
	return name
}

func truncateUTF8(s string, n int) string {
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
