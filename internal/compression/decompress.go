package compression

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// readerFunc wraps a compressed stream, returning the decompressing reader
// and a function releasing it.
type readerFunc func(io.Reader) (io.Reader, func(), error)

func gzipReader(r io.Reader) (io.Reader, func(), error) {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	return gzr, func() { _ = gzr.Close() }, nil
}

func xzReader(r io.Reader) (io.Reader, func(), error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	return xzr, func() {}, nil
}

func bzip2Reader(r io.Reader) (io.Reader, func(), error) {
	return bzip2.NewReader(r), func() {}, nil
}
