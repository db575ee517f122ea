// Package netx implements the client half of the peerlink HTTP API.
package netx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/peerlink/internal/common"
	pmultipart "github.com/dmitrijs2005/peerlink/internal/multipart"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// UploadFile posts the file at path as multipart/form-data to
// <baseURL>/upload and returns the download token.
func UploadFile(ctx context.Context, client *http.Client, baseURL, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(path))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(baseURL, "/")+"/upload", pr)
	if err != nil {
		_ = pr.Close()
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp)
	}

	var out struct {
		Port string `json:"port"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if out.Port == "" {
		return "", fmt.Errorf("%w: empty token", ErrUnexpectedStatus)
	}
	return out.Port, nil
}

// DownloadFile fetches <baseURL>/download/<token> into dir under the name the
// server announces and returns the written path. The file appears only once
// the body has been received completely.
func DownloadFile(ctx context.Context, client *http.Client, baseURL, token, dir string) (string, error) {
	u := strings.TrimRight(baseURL, "/") + "/download/" + url.PathEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp)
	}

	name := common.DownloadedFile
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		name = params["filename"]
	}
	name = pmultipart.SanitizeFilename(name)

	tmp, err := os.CreateTemp(dir, ".peerlink-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("receive %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	dst := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", err
	}
	return dst, nil
}

func statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("%w: %s; body: %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(b)))
}
