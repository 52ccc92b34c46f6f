//go:build !unix

package blobstore

import vfs "github.com/hupe1980/dataframe/internal/fs"

// mapFile reads the file at path into memory.
func mapFile(fsys vfs.FileSystem, path string) ([]byte, func() error, error) {
	f, size, err := openSized(fsys, path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	data, err := readFile(f, size)
	return data, nil, err
}
