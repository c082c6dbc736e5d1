package fs

import (
	"fmt"
	"os"
)

// writeFileExclusive writes data to filename, failing with os.ErrExist if it
// already exists. A file it created but could not finish is removed again.
func writeFileExclusive(filename string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(filename)
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(filename)
		return fmt.Errorf("failed to sync %s: %w", filename, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(filename)
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}

	// OpenFile applies the umask; set the requested bits explicitly.
	if err := os.Chmod(filename, perm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", filename, err)
	}

	return nil
}
