package main

import (
	"github.com/MobRulesGames/vrtex/bitmap"
	"github.com/MobRulesGames/vrtex/gles"
	"github.com/MobRulesGames/vrtex/texture"
)

// assetSession uploads a list of app assets once, on the first device it is
// handed. Until that happens every asset counts as failed.
type assetSession struct {
	names    []string
	opts     texture.Options
	open     func(*texture.Uploader) uploadFunc
	uploaded bool
	failures int
}

func newAssetSession(names []string, opts texture.Options) *assetSession {
	return &assetSession{
		names:    names,
		opts:     opts,
		open:     assetUploader,
		failures: len(names),
	}
}

// Must be called on the thread that owns dev's context.
func (s *assetSession) visible(dev gles.Device) {
	if s.uploaded {
		return
	}
	up := texture.MakeUploader(texture.Immediate, dev, s.opts)
	s.failures = uploadAll("", s.names, s.open(up), up.Release)
	s.uploaded = true
}

func (s *assetSession) exitCode() int {
	return exitCode(s.failures)
}

func assetUploader(up *texture.Uploader) uploadFunc {
	return func(name string) (*texture.BaseTexture, error) {
		bm, err := bitmap.OpenAsset(name, bitmap.Options{FlipVertical: up.Options().FlipVertical})
		if err != nil {
			return nil, err
		}
		return up.FromBitmap(bm)
	}
}
