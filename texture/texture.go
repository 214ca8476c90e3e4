// Package texture uploads RGBA8 pixel data, from platform bitmaps or raw
// buffers, into OpenGL 2D textures.
//
// Nothing in this package locks. Every call that reaches a gles.Device must
// run on the thread that owns the GL context; use an Uploader with a
// RenderThread runner to get there from elsewhere.
package texture

import (
	"github.com/MobRulesGames/vrtex/gles"
	"github.com/MobRulesGames/vrtex/logging"
)

// go vet's copylocks check reports copies of any struct holding one of these.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Texture owns a single texture name on a device. The name is deleted by
// Release and by nothing else.
type Texture struct {
	noCopy noCopy

	dev    gles.Device
	target gles.Enum
	id     gles.Handle
}

// Allocates a texture name, binds it to 'target' and gives it linear
// filtering with edge clamping.
func newTexture(dev gles.Device, target gles.Enum) *Texture {
	t := &Texture{
		dev:    dev,
		target: target,
		id:     dev.GenTexture(),
	}
	dev.BindTexture(target, t.id)
	dev.TexParameteri(target, gles.TEXTURE_MIN_FILTER, int(gles.LINEAR))
	dev.TexParameteri(target, gles.TEXTURE_MAG_FILTER, int(gles.LINEAR))
	dev.TexParameteri(target, gles.TEXTURE_WRAP_S, int(gles.CLAMP_TO_EDGE))
	dev.TexParameteri(target, gles.TEXTURE_WRAP_T, int(gles.CLAMP_TO_EDGE))
	return t
}

// Returns the driver-assigned texture name, or 0 once released.
func (t *Texture) ID() gles.Handle {
	return t.id
}

func (t *Texture) Bind() error {
	if t.id == 0 {
		return ErrReleased
	}
	t.dev.BindTexture(t.target, t.id)
	return nil
}

// Deletes the texture name. Calling Release more than once is harmless.
func (t *Texture) Release() {
	if t.id == 0 {
		return
	}
	logging.Trace("releasing texture", "handle", t.id)
	t.dev.DeleteTexture(t.id)
	t.id = 0
}

func (t *Texture) Released() bool {
	return t.id == 0
}
