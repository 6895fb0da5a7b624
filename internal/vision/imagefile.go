package vision

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".webp": true,
}

// ValidateFile checks the path before any classification attempt: the
// file must exist and carry a supported image extension. The returned
// error text is shown to the user verbatim in an error entry.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("File not found: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return fmt.Errorf("Unsupported image format '%s'. Please use JPG or PNG.", ext)
	}
	return nil
}

// ReadImage validates, reads, and decode-checks the file, returning
// the raw bytes handed to the classifier.
func ReadImage(path string) ([]byte, error) {
	if err := ValidateFile(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Could not read image: %v", err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("Could not read image: %v", err)
	}
	return data, nil
}
