//go:generate go run go.uber.org/mock/mockgen -source=deps.go -destination=mocks/mock_deps.go -package=mocks
package httpapi

import (
	"context"

	"github.com/dmitrijs2005/peerlink/internal/transfer"
)

// PortCipher seals listener ports into public tokens and back.
type PortCipher interface {
	SealPort(port int) (string, error)
	OpenPort(token string) (int, error)
}

// Offerer registers stored files for a single download.
type Offerer interface {
	Offer(ctx context.Context, path string) (int, error)
	Serve(ctx context.Context, port int) error
}

// FileStore persists decoded uploads.
type FileStore interface {
	Save(name string, data []byte) (string, error)
	Remove(path string) error
}

// Fetcher connects to an offered port.
type Fetcher interface {
	Fetch(ctx context.Context, port int) (*transfer.Stream, error)
}
