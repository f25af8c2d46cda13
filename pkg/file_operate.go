package pkg

import (
	"io"
	"os"
)

// CheckFileExist reports whether the file at filePath exists.
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// OpenInput opens filePath for reading, or hands back stdin when filePath
// is empty. The second return closes the source; for stdin it is a no-op.
func OpenInput(filePath string) (io.Reader, func() error, error) {
	if filePath == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
