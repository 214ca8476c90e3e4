package bitmap

import (
	"fmt"

	"golang.org/x/mobile/asset"
)

// OpenAsset decodes a bitmap packaged with the app. On Android the name is
// relative to the apk's assets directory; elsewhere it is relative to the
// 'assets' directory next to the executable.
func OpenAsset(name string, opts Options) (*Image, error) {
	f, err := asset.Open(name)
	if err != nil {
		return nil, fmt.Errorf("couldn't open asset %q: %w", name, err)
	}
	defer f.Close()

	im, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("couldn't load asset %q: %w", name, err)
	}
	return im, nil
}
