package bitmap

import (
	"image"
	"image/draw"

	"github.com/MobRulesGames/memory"
	"github.com/runningwild/glop/imgmanip"
)

// memory.GetBlock hands out at most 1<<30 bytes.
const maxBlockSize = 1 << 30

type Options struct {
	// OpenGL reads rows bottom-up while image.Image stores them top-down.
	// Setting this stores the last row first when the pixels are locked.
	FlipVertical bool
}

// Image adapts an image.Image to the Bitmap interface. Locked pixels are
// always tightly packed RGBA_8888, converted from whatever the source model
// is.
type Image struct {
	src  image.Image
	opts Options

	pix    []byte
	locked bool
}

var _ Bitmap = (*Image)(nil)

func FromImage(src image.Image, opts Options) *Image {
	return &Image{
		src:  src,
		opts: opts,
	}
}

func (im *Image) Info() (Info, Result) {
	if im.src == nil {
		return Info{}, ResultBadParameter
	}
	bounds := im.src.Bounds()
	if bounds.Empty() {
		return Info{}, ResultBadParameter
	}
	return Info{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Stride: 4 * bounds.Dx(),
		Format: FormatRGBA8888,
	}, ResultSuccess
}

func (im *Image) LockPixels() ([]byte, Result) {
	if im.locked {
		return nil, ResultBadParameter
	}
	info, res := im.Info()
	if res.Failed() {
		return nil, res
	}

	if info.Height > maxBlockSize/info.Stride {
		return nil, ResultAllocationFailed
	}
	size := info.Stride * info.Height
	pix := memory.GetBlock(size)[:size]

	// InvertedCanvas ignores Bounds().Min; keep the scratch image at (0,0).
	rgba := &image.RGBA{
		Pix:    pix,
		Stride: info.Stride,
		Rect:   image.Rect(0, 0, info.Width, info.Height),
	}
	var canvas draw.Image = rgba
	if im.opts.FlipVertical {
		canvas = imgmanip.NewInvertedCanvas(rgba)
	}
	draw.Draw(canvas, rgba.Rect, im.src, im.src.Bounds().Min, draw.Src)

	im.pix = pix
	im.locked = true
	return pix, ResultSuccess
}

func (im *Image) UnlockPixels() {
	if !im.locked {
		return
	}
	memory.FreeBlock(im.pix)
	im.pix = nil
	im.locked = false
}
