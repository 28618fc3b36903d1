package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/joeka/localsecret/internal/access"
	"github.com/joeka/localsecret/internal/payload"
)

// shutdownGrace bounds how long in-flight responses may take to finish
// after the share ends.
const shutdownGrace = 5 * time.Second

// Server exposes a single payload under /{prefix}/{filename}.
type Server struct {
	payload *payload.Payload
	prefix  string
	counter *access.Counter

	httpServer *http.Server
	listener   net.Listener
	addr       *net.TCPAddr
}

// New returns a server for the given share. Call Listen before Run.
func New(p *payload.Payload, prefix string, counter *access.Counter) *Server {
	s := &Server{payload: p, prefix: prefix, counter: counter}
	s.httpServer = &http.Server{Handler: http.HandlerFunc(s.handle)}
	return s
}

// Listen binds an OS-assigned ephemeral TCP port on ip.
func (s *Server) Listen(ip net.IP) error {
	ln, err := net.Listen("tcp", net.JoinHostPort(ip.String(), "0"))
	if err != nil {
		return fmt.Errorf("bind %s: %w", ip, err)
	}
	s.listener = ln
	s.addr = ln.Addr().(*net.TCPAddr)
	return nil
}

// Addr returns the bound address. Valid after Listen.
func (s *Server) Addr() *net.TCPAddr { return s.addr }

// URL returns the full share URL with the filename path-escaped.
// Valid after Listen.
func (s *Server) URL() string {
	host := net.JoinHostPort(s.addr.IP.String(), strconv.Itoa(s.addr.Port))
	return fmt.Sprintf("http://%s/%s/%s", host, s.prefix, url.PathEscape(s.payload.Name))
}

// Run serves requests until either budget is exhausted or ctx is cancelled,
// drains in-flight responses and returns. A terminated share is a normal
// outcome and yields a nil error.
func (s *Server) Run(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("server is not listening")
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		log.Println("interrupted, shutting down")
	case <-s.counter.Exhausted():
		log.Printf("%s, shutting down", s.counter.Cause())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// handle routes one request as a valid or invalid attempt and answers
// according to the counter's verdict.
func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if !s.matches(r.URL.Path) {
		s.counter.RecordInvalid()
		_, failures := s.counter.Remaining()
		log.Printf("rejected %s %s from %s (%d tolerated failures left)", r.Method, r.URL.Path, r.RemoteAddr, failures)
		http.NotFound(w, r)
		return
	}

	if s.counter.RecordValid() != access.Serve {
		log.Printf("refused %s from %s: share is gone", r.URL.Path, r.RemoteAddr)
		http.Error(w, "410 gone", http.StatusGone)
		return
	}

	uses, _ := s.counter.Remaining()
	log.Printf("serving %q to %s (%d uses left)", s.payload.Name, r.RemoteAddr, uses)

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.payload.Name))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(s.payload.Size()))
	if _, err := w.Write(s.payload.Data); err != nil {
		log.Printf("write payload to %s: %v", r.RemoteAddr, err)
	}
}

// matches reports whether path is exactly /<prefix>/<filename>. The prefix
// is the only secret in the system, so the comparison is constant-time.
func (s *Server) matches(path string) bool {
	want := "/" + s.prefix + "/" + s.payload.Name
	return subtle.ConstantTimeCompare([]byte(path), []byte(want)) == 1
}
