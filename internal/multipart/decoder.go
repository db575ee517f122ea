// Package multipart extracts a single file part from a raw
// multipart/form-data body.
//
// The decoder is a byte-exact scan over the whole buffer, not a streaming
// MIME parser: it expects exactly one file part, does not descend into
// nested multipart bodies and ignores Content-Transfer-Encoding. Memory use
// is therefore proportional to the body size.
package multipart

import (
	"bytes"
	"fmt"
	"mime"
	"strings"

	"github.com/dmitrijs2005/peerlink/internal/common"
)

var (
	ErrMissingFilename = fmt.Errorf("%w: no filename marker", common.ErrParseFailure)
	ErrMalformedBody   = fmt.Errorf("%w: malformed body", common.ErrParseFailure)
	ErrMissingBoundary = fmt.Errorf("%w: no boundary in content type", common.ErrParseFailure)
)

var (
	filenameMarker    = []byte(`filename="`)
	contentTypeMarker = []byte("Content-Type: ")
	headerEnd         = []byte("\r\n\r\n")
	lineEnd           = []byte("\r\n")
)

// Part is the file part of an upload. Content aliases the body passed to
// Decode.
type Part struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Decode locates the file part in body. The filename is returned exactly as
// sent and must be sanitized before it touches the filesystem.
func Decode(body []byte, boundary string) (*Part, error) {
	if boundary == "" {
		return nil, ErrMissingBoundary
	}

	// filename="..."; escaped quotes are not handled
	start := bytes.Index(body, filenameMarker)
	if start < 0 {
		return nil, ErrMissingFilename
	}
	start += len(filenameMarker)

	end := bytes.IndexByte(body[start:], '"')
	if end < 0 {
		return nil, ErrMalformedBody
	}
	filename := string(body[start : start+end])
	afterName := start + end

	// headers of this part end at the first blank line after the filename
	sep := indexFrom(body, headerEnd, afterName)
	if sep < 0 {
		return nil, ErrMalformedBody
	}
	contentStart := sep + len(headerEnd)

	contentType := common.DefaultContentType
	if i := bytes.Index(body[afterName:sep], contentTypeMarker); i >= 0 {
		ctStart := afterName + i + len(contentTypeMarker)
		if j := bytes.Index(body[ctStart:contentStart], lineEnd); j >= 0 {
			contentType = string(body[ctStart : ctStart+j])
		}
	}

	// The part ends at the first delimiter after the content, whether that
	// is the closing one ("--" suffix) or the start of another part.
	contentEnd := indexFrom(body, []byte("\r\n--"+boundary+"--"), contentStart)
	if next := indexFrom(body, []byte("\r\n--"+boundary), contentStart); next >= 0 && (contentEnd < 0 || next < contentEnd) {
		contentEnd = next
	}
	if contentEnd <= contentStart {
		return nil, ErrMalformedBody
	}

	return &Part{
		Filename:    filename,
		ContentType: contentType,
		Content:     body[contentStart:contentEnd],
	}, nil
}

func indexFrom(body, sep []byte, from int) int {
	if from > len(body) {
		return -1
	}
	i := bytes.Index(body[from:], sep)
	if i < 0 {
		return -1
	}
	return from + i
}

// BoundaryFromContentType returns the boundary parameter of a
// multipart/form-data Content-Type header.
func BoundaryFromContentType(contentType string) (string, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.EqualFold(mediaType, "multipart/form-data") {
		return "", fmt.Errorf("%w: %q is not multipart/form-data", common.ErrParseFailure, contentType)
	}

	boundary := params["boundary"]
	if boundary == "" {
		return "", ErrMissingBoundary
	}
	return boundary, nil
}
