// Package mapped loads whole files through a read-only memory mapping.
package mapped

import (
	"errors"
	"fmt"
	"io"

	"codeberg.org/go-mmap/mmap"
)

// ReadFile maps path read-only and returns its full contents as one
// contiguous buffer.
func ReadFile(path string) (data []byte, err error) {
	f, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to unmap %s: %w", path, cerr)
		}
	}()

	data = make([]byte, f.Len())
	if len(data) == 0 {
		return data, nil
	}

	n, err := f.ReadAt(data, 0)
	if err != nil && !(errors.Is(err, io.EOF) && n == len(data)) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}
