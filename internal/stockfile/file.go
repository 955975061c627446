package stockfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/roach88/shoestock/internal/inventory"
)

// ErrNoHeader is returned when the file has no header line to preserve.
var ErrNoHeader = errors.New("inventory file has no header line")

// LineError describes a data line that was skipped during Load.
type LineError struct {
	// Line is the 1-based line number in the file.
	Line int

	// Raw is the line as read, without its terminator.
	Raw string

	// Err is the parse failure.
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LoadResult summarizes a Load.
type LoadResult struct {
	// Loaded is the number of records appended to the store.
	Loaded int

	// Skipped lists the lines that failed to parse, in file order.
	Skipped []*LineError
}

// File is the persistence adapter for one inventory file.
type File struct {
	path string
	log  *zap.Logger
}

// New creates an adapter for the file at path.
// A nil logger disables diagnostics logging.
func New(path string, log *zap.Logger) *File {
	if log == nil {
		log = zap.NewNop()
	}
	return &File{path: path, log: log}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load parses the file and appends every well-formed record to store.
// The store is not cleared first.
//
// Only failing to open or read the file is an error; malformed lines are
// reported in the result.
func (f *File) Load(store *inventory.Store) (LoadResult, error) {
	var result LoadResult

	file, err := os.Open(f.path)
	if err != nil {
		return result, fmt.Errorf("load inventory: %w", err)
	}
	defer file.Close()

	lineNo := 0
	err = eachLine(file, func(line string) {
		lineNo++
		if lineNo == 1 {
			return // header
		}

		raw := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(raw) == "" {
			return
		}

		record, err := ParseLine(raw)
		if err != nil {
			lineErr := &LineError{Line: lineNo, Raw: raw, Err: err}
			result.Skipped = append(result.Skipped, lineErr)
			f.log.Warn("skipping malformed line",
				zap.String("path", f.path),
				zap.Int("line", lineNo),
				zap.String("raw", raw),
				zap.Error(err),
			)
			return
		}

		store.Add(record)
		result.Loaded++
	})
	if err != nil {
		return result, fmt.Errorf("load inventory: %w", err)
	}

	f.log.Debug("inventory loaded",
		zap.String("path", f.path),
		zap.Int("loaded", result.Loaded),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// readLines returns every line of the file with its terminator intact.
func (f *File) readLines() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	if err := eachLine(file, func(line string) {
		lines = append(lines, line)
	}); err != nil {
		return nil, err
	}
	return lines, nil
}

// eachLine calls fn for every line of r with its terminator intact.
// Lines have no length limit.
func eachLine(r io.Reader, fn func(line string)) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			fn(line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
