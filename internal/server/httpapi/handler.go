package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/peerlink/internal/common"
	"github.com/dmitrijs2005/peerlink/internal/logging"
	"github.com/dmitrijs2005/peerlink/internal/multipart"
	"github.com/gabriel-vasile/mimetype"
)

const downloadPrefix = "/download/"

type uploadResponse struct {
	Port string `json:"port"`
}

// Handlers serves the upload and download endpoints.
type Handlers struct {
	// transfers outlive the request that created them
	baseCtx context.Context

	cipher        PortCipher
	offers        Offerer
	store         FileStore
	fetcher       Fetcher
	maxUploadSize int64
	logger        logging.Logger
}

func NewHandlers(baseCtx context.Context, l logging.Logger, c PortCipher, o Offerer, s FileStore, f Fetcher, maxUploadSize int64) *Handlers {
	return &Handlers{
		baseCtx:       baseCtx,
		cipher:        c,
		offers:        o,
		store:         s,
		fetcher:       f,
		maxUploadSize: maxUploadSize,
		logger:        l.With("module", "http_handlers"),
	}
}

// Upload handles POST /upload.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeText(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(contentType), "multipart/form-data") {
		writeText(w, http.StatusBadRequest, "Bad Request: Content-Type must be multipart/form-data")
		return
	}

	boundary, err := multipart.BoundaryFromContentType(contentType)
	if err != nil {
		writeText(w, http.StatusBadRequest, "Bad Request: Could not parse file")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeText(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large")
			return
		}
		h.fail(ctx, w, "read upload body", err)
		return
	}

	part, err := multipart.Decode(body, boundary)
	if err != nil {
		h.logger.Info(ctx, "rejected upload", "error", err)
		writeText(w, http.StatusBadRequest, "Bad Request: Could not parse file")
		return
	}

	name := multipart.SanitizeFilename(part.Filename)
	if detected, ok := declaredTypeMismatch(part.ContentType, part.Content); ok {
		h.logger.Warn(ctx, "declared content type does not match payload",
			"name", name,
			"declared_type", part.ContentType,
			"detected_type", detected)
	}

	path, err := h.store.Save(name, part.Content)
	if err != nil {
		h.fail(ctx, w, "store upload", err)
		return
	}

	port, err := h.offers.Offer(ctx, path)
	if err != nil {
		_ = h.store.Remove(path)
		h.fail(ctx, w, "offer upload", err)
		return
	}

	go func() {
		if err := h.offers.Serve(h.baseCtx, port); err != nil {
			h.logger.Warn(h.baseCtx, "transfer not completed", "port", port, "error", err)
		}
	}()

	token, err := h.cipher.SealPort(port)
	if err != nil {
		h.fail(ctx, w, "seal port", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(uploadResponse{Port: token})
}

// Download handles GET /download/<token>.
func (h *Handlers) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		writeText(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	token := strings.TrimPrefix(r.URL.Path, downloadPrefix)

	port, err := h.cipher.OpenPort(token)
	if err != nil {
		h.fail(ctx, w, "open token", err)
		return
	}

	stream, err := h.fetcher.Fetch(ctx, port)
	if err != nil {
		h.fail(ctx, w, "fetch transfer", err)
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", multipart.SanitizeFilename(stream.Filename)))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)

	n, err := io.Copy(w, stream)
	if err != nil {
		h.logger.Error(ctx, "download aborted", "port", port, "written", n, "error", err)
		// drop the connection so a truncated body is not taken as complete
		panic(http.ErrAbortHandler)
	}
	h.logger.Info(ctx, "download relayed", "port", port, "size", n)
}

// NotFound answers everything outside the API routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusNotFound, "Not Found")
}

// fail maps an error kind to a response. Token failures all look the same
// to the client.
func (h *Handlers) fail(ctx context.Context, w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, common.ErrAuthFailure):
		h.logger.Warn(ctx, op, "error", err)
		writeText(w, http.StatusInternalServerError, "Server error: "+common.ErrAuthFailure.Error())
	case errors.Is(err, common.ErrTransferUnavailable):
		h.logger.Warn(ctx, op, "error", err)
		writeText(w, http.StatusInternalServerError, "Server error: "+common.ErrTransferUnavailable.Error())
	case errors.Is(err, common.ErrParseFailure):
		h.logger.Info(ctx, op, "error", err)
		writeText(w, http.StatusBadRequest, "Bad Request: Could not parse file")
	default:
		h.logger.Error(ctx, op, "error", err)
		writeText(w, http.StatusInternalServerError, "Server error: internal error")
	}
}

// declaredTypeMismatch sniffs content and reports the detected type when it
// is not the declared one or one of its aliases or ancestors. The generic
// octet-stream type never mismatches.
func declaredTypeMismatch(declared string, content []byte) (string, bool) {
	want, _, err := mime.ParseMediaType(declared)
	if err != nil || want == common.DefaultContentType {
		return "", false
	}

	detected := mimetype.Detect(content)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is(want) {
			return "", false
		}
	}
	return detected.String(), true
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}
