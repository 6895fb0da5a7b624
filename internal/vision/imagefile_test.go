package vision_test

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knsugi/wordlens/internal/vision"
)

func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestValidateFile_MissingFile(t *testing.T) {
	err := vision.ValidateFile("/no/such/image.png")
	require.Error(t, err)
	if !strings.HasPrefix(err.Error(), "File not found:") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestValidateFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	err := vision.ValidateFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unsupported image format '.txt'")
}

func TestValidateFile_SupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.bmp", "e.gif", "f.webp"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		if err := vision.ValidateFile(path); err != nil {
			t.Errorf("ValidateFile(%s) = %v, want nil", name, err)
		}
	}
}

func TestReadImage_DecodesValidPNG(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "ok.png")

	data, err := vision.ReadImage(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestReadImage_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("this is not a png"), 0644))

	_, err := vision.ReadImage(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Could not read image:")
}
