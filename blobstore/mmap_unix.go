//go:build unix

package blobstore

import (
	"fmt"

	"golang.org/x/sys/unix"

	vfs "github.com/hupe1980/dataframe/internal/fs"
)

// mapFile maps the file at path read-only. The returned release func unmaps it.
// Files without a descriptor are read into memory instead.
func mapFile(fsys vfs.FileSystem, path string) ([]byte, func() error, error) {
	f, size, err := openSized(fsys, path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if size == 0 {
		return []byte{}, nil, nil
	}
	fd, ok := f.(interface{ Fd() uintptr })
	if !ok {
		data, err := readFile(f, size)
		return data, nil, err
	}

	data, err := unix.Mmap(int(fd.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("blobstore: mmap %s: %w", path, err)
	}
	return data, func() error { return unix.Munmap(data) }, nil
}
