package transfer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/dmitrijs2005/peerlink/internal/common"
)

// Stream is the receiving end of a transfer: the announced filename and
// the raw bytes that follow the header line.
type Stream struct {
	Filename string

	conn   net.Conn
	reader *bufio.Reader
}

func (s *Stream) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

func (s *Stream) Close() error {
	return s.conn.Close()
}

// Dialer connects to offered ports on a fixed host.
type Dialer struct {
	Host    string
	Timeout time.Duration
}

// Fetch connects to port and reads the header line. An unreachable or
// already consumed listener yields common.ErrTransferUnavailable.
func (d *Dialer) Fetch(ctx context.Context, port int) (*Stream, error) {
	nd := net.Dialer{Timeout: d.Timeout}
	conn, err := nd.DialContext(ctx, "tcp", net.JoinHostPort(d.Host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("dial transfer port %d: %w", port, errors.Join(common.ErrTransferUnavailable, err))
	}

	reader := bufio.NewReader(conn)
	name, err := ReadHeader(reader)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Stream{Filename: name, conn: conn, reader: reader}, nil
}
