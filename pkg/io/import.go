package io

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// ReadFile returns the contents of path. A missing file is a FILE_NOT_FOUND
// error with path as its subject.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "no such file").WithSubject(path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
