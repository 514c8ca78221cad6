package cookies

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// snapshot copies a SQLite cookie store, with its -wal and -shm
// companions when present, into a temporary directory so a running
// browser keeps its lock. The caller must call cleanup.
func snapshot(src string) (path string, cleanup func(), err error) {
	dir, err := os.MkdirTemp("", "warpstore-cookies-*")
	if err != nil {
		return "", nil, fmt.Errorf("error: cannot create temp directory: %w", err)
	}
	cleanup = func() { os.RemoveAll(dir) }

	path = filepath.Join(dir, filepath.Base(src))
	if err := copyFile(src, path); err != nil {
		cleanup()
		return "", nil, err
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		if _, err := os.Stat(src + suffix); err == nil {
			_ = copyFile(src+suffix, path+suffix)
		}
	}
	return path, cleanup, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("error: cannot open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("error: cannot create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("error: cannot copy cookie store: %w", err)
	}
	return out.Close()
}
