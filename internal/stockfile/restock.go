package stockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// PersistRestock rewrites the quantity of every data line whose country
// field equals country and returns how many lines were patched.
//
// Matching is by country, not by code: every record sharing the country
// receives the new quantity. The header and all other lines are copied
// unchanged.
func (f *File) PersistRestock(country string, quantity int) (int, error) {
	lines, err := f.readLines()
	if err != nil {
		return 0, fmt.Errorf("persist restock: %w", err)
	}
	if len(lines) == 0 {
		return 0, fmt.Errorf("persist restock: %w", ErrNoHeader)
	}

	var b strings.Builder
	b.WriteString(lines[0])
	patched := 0
	for _, line := range lines[1:] {
		fields := strings.Split(strings.TrimSpace(line), ",")
		if fields[0] != country {
			b.WriteString(line)
			continue
		}
		fields[len(fields)-1] = strconv.Itoa(quantity)
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\n")
		patched++
	}

	if err := f.replace([]byte(b.String())); err != nil {
		return 0, fmt.Errorf("persist restock: %w", err)
	}

	f.log.Debug("restock persisted",
		zap.String("path", f.path),
		zap.String("country", country),
		zap.Int("quantity", quantity),
		zap.Int("patched", patched),
	)
	return patched, nil
}

// replace atomically swaps the file content for data.
// The original file mode is kept.
func (f *File) replace(data []byte) (err error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Chmod(info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
