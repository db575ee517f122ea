package transfer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/peerlink/internal/common"
)

const (
	headerPrefix = "Filename: "

	// MaxHeaderLen bounds the header line, newline included.
	MaxHeaderLen = 4096
)

// WriteHeader writes the header line for name. Newlines in name would
// corrupt the stream, so they are dropped.
func WriteHeader(w io.Writer, name string) error {
	name = strings.NewReplacer("\r", "", "\n", "").Replace(name)
	_, err := io.WriteString(w, headerPrefix+name+"\n")
	return err
}

// ReadHeader reads the header line and returns the announced filename.
// A line without the expected prefix yields common.DownloadedFile.
func ReadHeader(r *bufio.Reader) (string, error) {
	var line []byte
	for {
		chunk, err := r.ReadSlice('\n')
		line = append(line, chunk...)
		if len(line) > MaxHeaderLen {
			return "", ErrHeaderTooLong
		}
		if err == nil {
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: connection closed before header", common.ErrTransferUnavailable)
		}
		return "", fmt.Errorf("read header: %w", errors.Join(common.ErrIOFailure, err))
	}

	line = bytes.TrimSpace(line)
	name, ok := bytes.CutPrefix(line, []byte(strings.TrimSpace(headerPrefix)))
	if !ok {
		return common.DownloadedFile, nil
	}

	filename := string(bytes.TrimSpace(name))
	if filename == "" {
		return common.DownloadedFile, nil
	}
	return filename, nil
}
