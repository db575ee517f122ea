package transfer

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/peerlink/internal/common"
	"github.com/dmitrijs2005/peerlink/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, "hello.txt"))
	assert.Equal(t, "Filename: hello.txt\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteHeader(&buf, "a\r\nb.txt"))
	assert.Equal(t, "Filename: ab.txt\n", buf.String())
}

func TestReadHeader(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     string
		wantRest string
	}{
		{"plain", "Filename: hello.txt\n0123456789", "hello.txt", "0123456789"},
		{"crlf", "Filename: a b.txt\r\nrest", "a b.txt", "rest"},
		{"no prefix", "Something: else\ndata", common.DownloadedFile, "data"},
		{"empty name", "Filename: \ndata", common.DownloadedFile, "data"},
		{"binary payload", "Filename: x\n\x00\n\xff", "x", "\x00\n\xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReader(strings.NewReader(tt.in))
			got, err := ReadHeader(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			rest, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRest, string(rest))
		})
	}
}

func TestReadHeader_Errors(t *testing.T) {
	_, err := ReadHeader(bufio.NewReader(strings.NewReader("")))
	assert.ErrorIs(t, err, common.ErrTransferUnavailable)

	_, err = ReadHeader(bufio.NewReader(strings.NewReader("Filename: no newline")))
	assert.ErrorIs(t, err, common.ErrTransferUnavailable)

	long := "Filename: " + strings.Repeat("a", MaxHeaderLen) + "\n"
	_, err = ReadHeader(bufio.NewReaderSize(strings.NewReader(long), 64))
	assert.ErrorIs(t, err, ErrHeaderTooLong)
}

func TestDialer_FetchEndToEnd(t *testing.T) {
	path := writeFile(t, "hello.txt", []byte("0123456789"))
	r := NewRegistry(logging.Nop{})
	ctx := context.Background()

	port, err := r.Offer(ctx, path)
	require.NoError(t, err)
	done := serveAsync(ctx, r, port)

	d := &Dialer{Host: "127.0.0.1", Timeout: 2 * time.Second}
	stream, err := d.Fetch(ctx, port)
	require.NoError(t, err)
	defer stream.Close()

	assert.Equal(t, "hello.txt", stream.Filename)
	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))
	require.NoError(t, waitErr(t, done))

	_, err = d.Fetch(ctx, port)
	assert.ErrorIs(t, err, common.ErrTransferUnavailable, "consumed handle must not be fetchable")
}
