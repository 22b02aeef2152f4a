// Package fileio opens named files for reading and writing, reporting
// failures as ErrInputNotFound or ErrOutputNotCreated.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrInputNotFound is returned when a file to read does not exist
	ErrInputNotFound = errors.New("input file not found")

	// ErrOutputNotCreated is returned when a file to write cannot be created
	ErrOutputNotCreated = errors.New("output file could not be created")
)

// Reader reads a named file sequentially
type Reader struct {
	file *os.File
	size int64
}

// OpenToRead opens name for sequential reads
func OpenToRead(name string) (*Reader, error) {
	cleanPath := filepath.Clean(name)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, name)
		}
		return nil, fmt.Errorf("cannot access %s: %w", name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, name)
	}

	// #nosec G304 - reading user-named data files is the point
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	return &Reader{
		file: file,
		size: info.Size(),
	}, nil
}

// Read implements io.Reader over the underlying file
func (r *Reader) Read(p []byte) (int, error) {
	return r.file.Read(p)
}

// Size returns the file size at open time
func (r *Reader) Size() int64 {
	return r.size
}

// Name returns the file name
func (r *Reader) Name() string {
	return r.file.Name()
}

// Close closes the file
func (r *Reader) Close() error {
	return r.file.Close()
}

// Writer writes a named file through a buffer flushed on Close
type Writer struct {
	file *os.File
	buf  *bufio.Writer
}

// OpenToWrite creates (or truncates) name, creating parent directories
func OpenToWrite(name string) (*Writer, error) {
	cleanPath := filepath.Clean(name)

	if dir := filepath.Dir(cleanPath); dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrOutputNotCreated, name, err)
		}
	}

	// #nosec G304 - output path chosen by the user
	file, err := os.Create(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOutputNotCreated, name, err)
	}

	return &Writer{file: file, buf: bufio.NewWriter(file)}, nil
}

// Write implements io.Writer
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close flushes and closes the file
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("flush %s: %w", w.file.Name(), err)
	}
	return w.file.Close()
}
