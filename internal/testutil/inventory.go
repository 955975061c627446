package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// DefaultHeader is the header line used by WriteInventory.
const DefaultHeader = "Country,Code,Product,Cost,Quantity"

// WriteInventory writes an inventory file into a fresh temp directory and
// returns its path. Each data line is terminated with "\n".
func WriteInventory(t *testing.T, lines ...string) string {
	t.Helper()
	return WriteRaw(t, DefaultHeader+"\n"+joinLines(lines))
}

// WriteRaw writes content verbatim into a fresh temp directory and returns
// the file path. Use it when the test needs exact control over the bytes.
func WriteRaw(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write inventory: %v", err)
	}
	return path
}

// ReadFile returns the content of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
