package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/joeka/localsecret/internal/access"
	"github.com/joeka/localsecret/internal/netutil"
	"github.com/joeka/localsecret/internal/payload"
	"github.com/joeka/localsecret/internal/server"
	"github.com/joeka/localsecret/internal/token"
)

// App is an assembled share, ready to run.
type App struct {
	Payload *payload.Payload
	Prefix  string
	Counter *access.Counter
	Server  *server.Server
	IP      net.IP

	showQR bool
}

// New validates cfg and assembles all components of the share.
func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		p   *payload.Payload
		err error
	)
	if cfg.SecretFile != "" {
		p, err = payload.FromFile(cfg.SecretFile)
	} else {
		p, err = payload.FromReader(cfg.Stdin)
	}
	if err != nil {
		return nil, err
	}

	prefix, err := token.Generate(cfg.PrefixLength)
	if err != nil {
		return nil, err
	}

	ip, err := netutil.LocalIP(cfg.BindIP)
	if err != nil {
		return nil, err
	}

	counter := access.NewCounter(access.Policy{
		Uses:           cfg.Uses,
		FailedAttempts: cfg.FailedAttempts,
	})

	return &App{
		Payload: p,
		Prefix:  prefix,
		Counter: counter,
		Server:  server.New(p, prefix, counter),
		IP:      ip,
		showQR:  cfg.ShowQR,
	}, nil
}

// Run binds the listener, prints the share URL to out and serves until the
// share is exhausted or ctx is cancelled.
//
// The URL is the first line on out so scripts can capture it; everything
// else goes to the log.
func (a *App) Run(ctx context.Context, out io.Writer) error {
	if err := a.Server.Listen(a.IP); err != nil {
		return err
	}

	fmt.Fprintln(out, a.Server.URL())
	if a.showQR {
		q, err := qrcode.New(a.Server.URL(), qrcode.Medium)
		if err != nil {
			return fmt.Errorf("generate qr code: %w", err)
		}
		fmt.Fprint(out, q.ToString(false))
	}
	log.Printf("sharing %q (%d bytes, fingerprint %s)", a.Payload.Name, a.Payload.Size(), a.Payload.Fingerprint())

	return a.Server.Run(ctx)
}
