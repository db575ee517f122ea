// Package cryptox seals listener handles into opaque, tamper-evident tokens.
//
// A token is base64url (no padding) over nonce || ciphertext || tag, where
// the cipher is AES-256-GCM with a fresh 96-bit nonce per call and a 128-bit
// tag. The symmetric key is held in a memguard enclave and only decrypted
// into locked memory for the duration of a single Seal or Open.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"

	"github.com/awnumar/memguard"
	"github.com/dmitrijs2005/peerlink/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// NonceSize is the GCM nonce length in bytes.
	NonceSize = 12
	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16
)

var (
	ErrInvalidKeyLength = fmt.Errorf("key must be %d bytes", KeySize)
	ErrInvalidPort      = fmt.Errorf("port out of range")
)

// DeriveKey stretches a passphrase into a KeySize key with Argon2id.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// KeyFromBase64 decodes a standard base64 key as found in configuration
// files and checks its length.
func KeyFromBase64(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if len(key) != KeySize {
		common.WipeByteArray(key)
		return nil, ErrInvalidKeyLength
	}
	return key, nil
}

// RandomKey returns a fresh KeySize key for processes that have no key
// configured.
func RandomKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

// Option configures a PortCipher.
type Option func(*PortCipher)

// WithNonceSource replaces crypto/rand as the nonce source. Tests use it to
// get reproducible tokens.
func WithNonceSource(r io.Reader) Option {
	return func(c *PortCipher) {
		c.nonces = r
	}
}

// PortCipher seals and opens listener handles. It is safe for concurrent use
// as long as the nonce source is.
type PortCipher struct {
	key    *memguard.Enclave
	nonces io.Reader
}

// NewPortCipher moves key into a memguard enclave. The caller's slice is
// wiped in the process and must not be reused.
func NewPortCipher(key []byte, opts ...Option) (*PortCipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	c := &PortCipher{
		key:    memguard.NewEnclave(key),
		nonces: rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *PortCipher) aead() (cipher.AEAD, func(), error) {
	buf, err := c.key.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open key enclave: %w", err)
	}

	block, err := aes.NewCipher(buf.Bytes())
	if err != nil {
		buf.Destroy()
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		buf.Destroy()
		return nil, nil, err
	}

	return aesgcm, buf.Destroy, nil
}

// Seal encrypts plaintext and returns the URL-safe token.
func (c *PortCipher) Seal(plaintext []byte) (string, error) {
	aesgcm, release, err := c.aead()
	if err != nil {
		return "", err
	}
	defer release()

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(c.nonces, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	// nonce || ciphertext || tag
	sealed := aesgcm.Seal(nonce, nonce, plaintext, nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. Every failure, whether bad encoding, short input or a
// tag mismatch, is reported as common.ErrAuthFailure.
func (c *PortCipher) Open(token string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) < NonceSize+TagSize {
		return nil, common.ErrAuthFailure
	}

	aesgcm, release, err := c.aead()
	if err != nil {
		return nil, err
	}
	defer release()

	plaintext, err := aesgcm.Open(nil, raw[:NonceSize], raw[NonceSize:], nil)
	if err != nil {
		return nil, common.ErrAuthFailure
	}
	return plaintext, nil
}

// SealPort seals the decimal form of a listener port.
func (c *PortCipher) SealPort(port int) (string, error) {
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}
	return c.Seal([]byte(strconv.Itoa(port)))
}

// OpenPort opens a token produced by SealPort.
func (c *PortCipher) OpenPort(token string) (int, error) {
	plaintext, err := c.Open(token)
	if err != nil {
		return 0, err
	}

	port, err := strconv.Atoi(string(plaintext))
	if err != nil || port < 1 || port > 65535 {
		return 0, common.ErrAuthFailure
	}
	return port, nil
}
