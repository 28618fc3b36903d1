package payload_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/joeka/localsecret/internal/payload"
)

func TestFromFile_OK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_file.txt")
	if err := os.WriteFile(path, []byte("secret: 42\n"), 0o600); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	p, err := payload.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if p.Name != "test_file.txt" {
		t.Fatalf("name: got %q, want %q", p.Name, "test_file.txt")
	}
	if string(p.Data) != "secret: 42\n" {
		t.Fatalf("data: got %q", p.Data)
	}
	if p.Size() != len("secret: 42\n") {
		t.Fatalf("size: got %d", p.Size())
	}
}

func TestFromFile_Missing(t *testing.T) {
	_, err := payload.FromFile("test/file/doesnt/exist")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "secret file doesn't exist") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFromFile_Directory(t *testing.T) {
	if _, err := payload.FromFile(t.TempDir()); err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestFromReader_OK(t *testing.T) {
	p, err := payload.FromReader(strings.NewReader("piped secret"))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if p.Name != payload.StdinName {
		t.Fatalf("name: got %q, want %q", p.Name, payload.StdinName)
	}
	if string(p.Data) != "piped secret" {
		t.Fatalf("data: got %q", p.Data)
	}
}

func TestFromReader_Empty(t *testing.T) {
	if _, err := payload.FromReader(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestFingerprint(t *testing.T) {
	a := &payload.Payload{Name: "a", Data: []byte("very secret")}
	b := &payload.Payload{Name: "b", Data: []byte("very secret")}
	c := &payload.Payload{Name: "c", Data: []byte("something else")}

	if !regexp.MustCompile(`^[0-9a-f]{16}$`).MatchString(a.Fingerprint()) {
		t.Fatalf("fingerprint format: %q", a.Fingerprint())
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("fingerprint should depend only on the payload bytes")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatal("different payloads produced the same fingerprint")
	}
}
