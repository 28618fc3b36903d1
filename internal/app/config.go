package app

import (
	"fmt"
	"io"
	"net"
)

// Config holds the runtime options of one share.
type Config struct {
	SecretFile     string    // path to the secret file; empty when piping
	Stdin          io.Reader // non-nil when the secret arrives on stdin
	PrefixLength   int       // length of the random URL prefix
	Uses           uint      // how often the URL may be retrieved
	FailedAttempts uint      // invalid requests tolerated before aborting
	BindIP         net.IP    // optional; auto-discovered when nil
	ShowQR         bool      // print the share URL as a terminal QR code
}

// Validate rejects configurations the server must not start with.
func (c Config) Validate() error {
	if c.PrefixLength < 1 {
		return fmt.Errorf("url prefix length must be at least 1, got %d", c.PrefixLength)
	}
	if c.SecretFile == "" && c.Stdin == nil {
		return fmt.Errorf("no secret to share: pass --secret-file or pipe data on stdin")
	}
	if c.SecretFile != "" && c.Stdin != nil {
		return fmt.Errorf("a secret file and piped input are mutually exclusive")
	}
	return nil
}
