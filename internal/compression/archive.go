package compression

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// extractFromTar returns the best settings candidate from a compressed tar archive.
func extractFromTar(data []byte, open readerFunc) (*Result, error) {
	r, closeFn, err := open(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer closeFn()

	tr := tar.NewReader(r)
	var best *Result
	bestPriority := 0
	var foundFiles []string

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}

		foundFiles = append(foundFiles, header.Name)
		priority := settingsPriority(header.Name)
		if priority <= bestPriority {
			continue
		}

		content, err := readLimited(tr)
		if err != nil {
			return nil, err
		}
		best = &Result{Data: content, Name: header.Name, WasArchive: true}
		bestPriority = priority
	}

	if best == nil {
		return nil, fmt.Errorf("no settings file found in archive (found: %v)", foundFiles)
	}
	return best, nil
}

// extractFromZip returns the best settings candidate from a zip archive.
func extractFromZip(data []byte) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zip reader: %w", err)
	}

	var best *zip.File
	bestPriority := 0
	var foundFiles []string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		foundFiles = append(foundFiles, f.Name)
		if priority := settingsPriority(f.Name); priority > bestPriority {
			best, bestPriority = f, priority
		}
	}

	if best == nil {
		return nil, fmt.Errorf("no settings file found in archive (found: %v)", foundFiles)
	}

	rc, err := best.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s in archive: %w", best.Name, err)
	}
	defer rc.Close()

	content, err := readLimited(rc)
	if err != nil {
		return nil, err
	}
	return &Result{Data: content, Name: best.Name, WasArchive: true}, nil
}
