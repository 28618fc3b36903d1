// Package payload holds the secret being shared: its bytes, the filename it
// is published under, and a short fingerprint for display.
package payload

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// StdinName is the placeholder filename used when the secret arrives on
// standard input instead of a file.
const StdinName = "secret"

// Payload is the immutable content of a share. It is set once at startup
// and read concurrently by request handlers without further synchronisation.
type Payload struct {
	Name string
	Data []byte
}

// FromFile reads the secret from path. The published filename is the path's
// base name.
func FromFile(path string) (*Payload, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("the provided secret file doesn't exist or is not a file: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read secret file %q: %w", path, err)
	}
	return &Payload{Name: filepath.Base(path), Data: data}, nil
}

// FromReader reads the secret from r, typically piped standard input, and
// publishes it under StdinName.
func FromReader(r io.Reader) (*Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read secret from stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no secret provided on standard input")
	}
	return &Payload{Name: StdinName, Data: data}, nil
}

// Size returns the payload length in bytes.
func (p *Payload) Size() int { return len(p.Data) }

// Fingerprint returns a short BLAKE2b fingerprint of the payload so the
// receiver can verify what they downloaded.
func (p *Payload) Fingerprint() string {
	sum := blake2b.Sum256(p.Data)
	return hex.EncodeToString(sum[:8])
}
