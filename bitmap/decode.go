package bitmap

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode reads any registered image format (png, jpeg, gif, bmp, webp) into
// a Bitmap.
func Decode(r io.Reader, opts Options) (*Image, error) {
	im, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode bitmap: %w", err)
	}
	return FromImage(im, opts), nil
}

func Load(path string, opts Options) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open path %q: %w", path, err)
	}
	defer f.Close()

	im, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("couldn't load %q: %w", path, err)
	}
	return im, nil
}
