package netutil_test

import (
	"net"
	"testing"

	"github.com/joeka/localsecret/internal/netutil"
)

func TestLocalIP_WithBindIP(t *testing.T) {
	bind := net.ParseIP("10.11.12.13")
	got, err := netutil.LocalIP(bind)
	if err != nil {
		t.Fatalf("LocalIP: %v", err)
	}
	if !got.Equal(bind) {
		t.Fatalf("got %s, want %s", got, bind)
	}
}

func TestLocalIP_Discovered(t *testing.T) {
	got, err := netutil.LocalIP(nil)
	if err != nil {
		t.Skipf("no local network available: %v", err)
	}
	if got == nil {
		t.Fatal("LocalIP returned nil without error")
	}
	if got.IsLoopback() {
		t.Fatalf("discovered address %s is a loopback address", got)
	}
}
