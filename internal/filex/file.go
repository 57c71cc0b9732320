// Package filex opens local files picked by the CLI user.
package filex

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

// OpenRegular opens path for reading and returns the file with its size and
// a content type guessed from the extension. Directories are refused.
func OpenRegular(path string) (*os.File, int64, string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, 0, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, 0, "", fmt.Errorf("%s is not a regular file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, "", fmt.Errorf("open %s: %w", path, err)
	}

	return f, fi.Size(), mime.TypeByExtension(filepath.Ext(path)), nil
}
