// Package compression opens settings files that may be compressed or packed
// into an archive bundle.
package compression

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/swatches/internal/security"
)

// MaxSize is the largest decompressed payload accepted.
const MaxSize = 16 * 1024 * 1024

// Result is the payload found in a file.
type Result struct {
	// Data is the decompressed content.
	Data []byte
	// Name is the name of the payload: the archive member, or the file name
	// with its compression suffix removed.
	Name string
	// WasArchive reports whether Data came from a tar or zip bundle.
	WasArchive bool
}

// Open detects the container format of data from name and returns the
// payload. It handles:
// - Tar archives (.tar.gz, .tgz, .tar.xz, .txz, .tar.bz2, .tbz, .tbz2)
// - Zip archives (.zip)
// - Standalone compressed files (.gz, .xz, .bz2)
// - Anything else is returned unchanged
func Open(data []byte, name string) (*Result, error) {
	lower := strings.ToLower(name)

	switch {
	case hasAnySuffix(lower, ".tar.gz", ".tgz"):
		return extractFromTar(data, gzipReader)
	case hasAnySuffix(lower, ".tar.xz", ".txz"):
		return extractFromTar(data, xzReader)
	case hasAnySuffix(lower, ".tar.bz2", ".tbz", ".tbz2"):
		return extractFromTar(data, bzip2Reader)
	case strings.HasSuffix(lower, ".zip"):
		return extractFromZip(data)
	}

	for suffix, open := range map[string]readerFunc{".gz": gzipReader, ".xz": xzReader, ".bz2": bzip2Reader} {
		if strings.HasSuffix(lower, suffix) {
			content, err := decompress(data, open)
			if err != nil {
				return nil, err
			}
			return &Result{Data: content, Name: name[:len(name)-len(suffix)]}, nil
		}
	}

	return &Result{Data: data, Name: name}, nil
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func decompress(data []byte, open readerFunc) ([]byte, error) {
	r, closeFn, err := open(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return readLimited(r)
}

func readLimited(r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(security.NewLimitedReader(r, MaxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return content, nil
}

// settingsPriority ranks archive members: well-known settings names first,
// then any JSON or YAML file. Zero means the member is not a candidate.
func settingsPriority(name string) int {
	base := strings.ToLower(filepath.Base(name))
	ext := filepath.Ext(base)
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return 0
	}
	switch strings.TrimSuffix(base, ext) {
	case "settings", "swatches", "colour-swatches":
		return 100
	}
	return 10
}
