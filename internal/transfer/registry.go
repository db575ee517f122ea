package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/peerlink/internal/common"
	"github.com/dmitrijs2005/peerlink/internal/logging"
	"github.com/samber/lo"
)

const (
	// DefaultPortQuarantine keeps retired ports out of reuse for as long as
	// an unclaimed offer would live by default.
	DefaultPortQuarantine = 10 * time.Minute

	maxBindAttempts = 16
)

// Offer is a file waiting for its single downloader.
type Offer struct {
	Port      int
	Path      string
	Name      string
	Size      int64
	CreatedAt time.Time
	// ExpiresAt is zero when the offer never expires.
	ExpiresAt time.Time

	listener *net.TCPListener
	serving  bool
}

// Registry owns the set of active offers, keyed by listener port.
type Registry struct {
	mu     sync.Mutex
	offers map[int]*Offer
	closed bool
	// retired ports and when they were released
	retired map[int]time.Time

	quarantine time.Duration
	listen     func(ctx context.Context, address string) (net.Listener, error)

	host        string
	ttl         time.Duration
	removeFiles bool
	now         func() time.Time
	logger      logging.Logger
}

type RegistryOption func(*Registry)

// WithHost sets the address listeners bind to. Defaults to 127.0.0.1.
func WithHost(host string) RegistryOption {
	return func(r *Registry) { r.host = host }
}

// WithTTL bounds how long an offer waits for its downloader. Zero disables
// expiry.
func WithTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) { r.ttl = ttl }
}

// WithPortQuarantine sets how long a retired port is refused for new offers,
// so a replayed token cannot reach a file offered later on the same port.
func WithPortQuarantine(d time.Duration) RegistryOption {
	return func(r *Registry) { r.quarantine = d }
}

// WithFileRemoval deletes the offered file once the offer is retired.
func WithFileRemoval(remove bool) RegistryOption {
	return func(r *Registry) { r.removeFiles = remove }
}

func NewRegistry(l logging.Logger, opts ...RegistryOption) *Registry {
	r := &Registry{
		offers:     make(map[int]*Offer),
		retired:    make(map[int]time.Time),
		quarantine: DefaultPortQuarantine,
		host:       "127.0.0.1",
		now:        time.Now,
		logger:     l.With("module", "transfer_registry"),
	}
	var lc net.ListenConfig
	r.listen = func(ctx context.Context, address string) (net.Listener, error) {
		return lc.Listen(ctx, "tcp", address)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Offer binds a listener on an OS-assigned port for the file at path and
// returns the port. Nothing is accepted until Serve is called, but the
// listener is ready as soon as Offer returns.
func (r *Registry) Offer(ctx context.Context, path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat offered file: %w", errors.Join(common.ErrIOFailure, err))
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%w: %s is not a regular file", common.ErrIOFailure, path)
	}

	tcpLn, err := r.bind(ctx)
	if err != nil {
		return 0, err
	}
	port := tcpLn.Addr().(*net.TCPAddr).Port

	now := r.now()
	offer := &Offer{
		Port:      port,
		Path:      path,
		Name:      filepath.Base(path),
		Size:      info.Size(),
		CreatedAt: now,
		listener:  tcpLn,
	}
	if r.ttl > 0 {
		offer.ExpiresAt = now.Add(r.ttl)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		_ = tcpLn.Close()
		return 0, ErrRegistryClosed
	}
	r.offers[port] = offer
	r.mu.Unlock()

	r.logger.Info(ctx, "offer created", "port", port, "name", offer.Name, "size", offer.Size)
	return port, nil
}

// Serve accepts one connection on the listener behind port, streams the
// header line and the file, then retires the offer. It blocks until the
// transfer finishes, the offer expires or ctx is cancelled.
func (r *Registry) Serve(ctx context.Context, port int) error {
	offer, err := r.claim(port)
	if err != nil {
		return err
	}
	defer r.retire(ctx, offer)

	ln := offer.listener
	if !offer.ExpiresAt.IsZero() {
		if err := ln.SetDeadline(offer.ExpiresAt); err != nil {
			return fmt.Errorf("set accept deadline: %w", errors.Join(common.ErrIOFailure, err))
		}
	}

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	conn, err := ln.AcceptTCP()
	// one connection only; later dials are refused from here on
	_ = ln.Close()
	if err != nil {
		var ne net.Error
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.As(err, &ne) && ne.Timeout():
			r.logger.Info(ctx, "offer expired", "port", port)
			return ErrOfferExpired
		case errors.Is(err, net.ErrClosed):
			return ErrRegistryClosed
		default:
			return fmt.Errorf("accept: %w", errors.Join(common.ErrIOFailure, err))
		}
	}

	if err := r.stream(conn, offer); err != nil {
		// reset rather than FIN so the peer cannot mistake it for EOF
		_ = conn.SetLinger(0)
		_ = conn.Close()
		r.logger.Error(ctx, "transfer aborted", "port", port, "error", err)
		return err
	}

	remote := conn.RemoteAddr().String()
	if err := conn.Close(); err != nil {
		return fmt.Errorf("close transfer connection: %w", errors.Join(common.ErrIOFailure, err))
	}
	r.logger.Info(ctx, "offer served", "port", port, "remote", remote)
	return nil
}

func (r *Registry) stream(conn *net.TCPConn, offer *Offer) error {
	f, err := os.Open(offer.Path)
	if err != nil {
		return fmt.Errorf("open offered file: %w", errors.Join(common.ErrIOFailure, err))
	}
	defer f.Close()

	if err := WriteHeader(conn, offer.Name); err != nil {
		return fmt.Errorf("write header: %w", errors.Join(common.ErrIOFailure, err))
	}
	if _, err := io.Copy(conn, f); err != nil {
		return fmt.Errorf("stream file: %w", errors.Join(common.ErrIOFailure, err))
	}
	return nil
}

// bind listens on an OS-assigned port that is not in quarantine. Ports
// still quarantined are held open while retrying so the OS hands out
// another one.
func (r *Registry) bind(ctx context.Context) (*net.TCPListener, error) {
	var held []net.Listener
	defer func() {
		for _, l := range held {
			_ = l.Close()
		}
	}()

	for range maxBindAttempts {
		ln, err := r.listen(ctx, net.JoinHostPort(r.host, "0"))
		if err != nil {
			return nil, fmt.Errorf("bind transfer listener: %w", errors.Join(common.ErrIOFailure, err))
		}
		tcpLn := ln.(*net.TCPListener)
		port := tcpLn.Addr().(*net.TCPAddr).Port

		if !r.quarantined(port) {
			return tcpLn, nil
		}
		r.logger.Debug(ctx, "skipping quarantined port", "port", port)
		held = append(held, ln)
	}
	return nil, fmt.Errorf("%w: no free port outside quarantine after %d attempts", common.ErrIOFailure, maxBindAttempts)
}

func (r *Registry) quarantined(port int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for p, at := range r.retired {
		if now.Sub(at) >= r.quarantine {
			delete(r.retired, p)
		}
	}
	_, ok := r.retired[port]
	return ok
}

func (r *Registry) claim(port int) (*Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	offer, ok := r.offers[port]
	if !ok {
		return nil, ErrUnknownHandle
	}
	if offer.serving {
		return nil, ErrAlreadyServing
	}
	offer.serving = true
	return offer, nil
}

func (r *Registry) retire(ctx context.Context, offer *Offer) {
	r.mu.Lock()
	delete(r.offers, offer.Port)
	if r.quarantine > 0 {
		r.retired[offer.Port] = r.now()
	}
	r.mu.Unlock()

	_ = offer.listener.Close()

	if r.removeFiles {
		if err := os.Remove(offer.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			r.logger.Warn(ctx, "remove served file", "path", offer.Path, "error", err)
		}
		// per-upload directory, removed only when empty
		_ = os.Remove(filepath.Dir(offer.Path))
	}
}

// Lookup returns a copy of the offer registered under port.
func (r *Registry) Lookup(port int) (Offer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	offer, ok := r.offers[port]
	if !ok {
		return Offer{}, false
	}
	return *offer, true
}

// Offers returns a snapshot of active offers ordered by creation time.
func (r *Registry) Offers() []Offer {
	r.mu.Lock()
	snapshot := lo.MapToSlice(r.offers, func(_ int, o *Offer) Offer { return *o })
	r.mu.Unlock()

	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].CreatedAt.Before(snapshot[j].CreatedAt)
	})
	return snapshot
}

// Len reports the number of active offers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.offers)
}

// Close releases every listener. Offers that are not being served are
// retired immediately; running Serve calls return ErrRegistryClosed.
func (r *Registry) Close(ctx context.Context) {
	r.mu.Lock()
	r.closed = true
	idle := lo.Filter(lo.Values(r.offers), func(o *Offer, _ int) bool { return !o.serving })
	for _, o := range r.offers {
		_ = o.listener.Close()
	}
	r.mu.Unlock()

	for _, o := range idle {
		r.retire(ctx, o)
	}
	r.logger.Info(ctx, "transfer registry closed", "released", len(idle))
}
