// Package input opens GFF text for the command-line tools.
//
// Paths may name plain, gzip or xz compressed files; "-" reads standard
// input. Compression is detected from the leading magic bytes, falling back
// to the file suffix.
package input

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// maxLineSize bounds a single line. Some GFF3 attribute columns carry
// whole sequences, so the default bufio limit is too small.
const maxLineSize = 64 << 20

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Compression identifies the container format of an input stream.
type Compression int

const (
	None Compression = iota
	Gzip
	XZ
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case XZ:
		return "xz"
	default:
		return "none"
	}
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Detect reports the compression of a stream from its first bytes, using
// the file name suffix when the header is inconclusive.
func Detect(header []byte, name string) Compression {
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return Gzip
	case bytes.HasPrefix(header, xzMagic):
		return XZ
	case strings.HasSuffix(name, ".gz"):
		return Gzip
	case strings.HasSuffix(name, ".xz"):
		return XZ
	default:
		return None
	}
}

// Open opens path for reading, transparently decompressing gzip and xz.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		r, err := NewReader(os.Stdin)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(r), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := wrap(fh, fh, path)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

// NewReader wraps r with the decompressor its header calls for.
func NewReader(r io.Reader) (io.Reader, error) {
	rc, err := wrap(r, io.NopCloser(r), "")
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func wrap(r io.Reader, closer io.Closer, name string) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	header, _ := br.Peek(len(xzMagic))

	switch Detect(header, name) {
	case Gzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	case XZ:
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		return &multiReadCloser{Reader: xr, closers: []io.Closer{closer}}, nil
	default:
		return &multiReadCloser{Reader: br, closers: []io.Closer{closer}}, nil
	}
}

// ReadLines splits r into lines without their terminators. A trailing
// carriage return is dropped so CRLF files parse like LF files.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// ReadFile opens path and returns all of its lines.
func ReadFile(path string) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadLines(rc)
}
