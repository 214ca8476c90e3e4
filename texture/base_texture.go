package texture

import (
	"fmt"
	"image"
	"math"

	"github.com/MobRulesGames/vrtex/bitmap"
	"github.com/MobRulesGames/vrtex/gles"
	"github.com/MobRulesGames/vrtex/logging"
)

// GL errors left over from earlier calls are drained before an upload so they
// aren't blamed on it. A context-less driver can report errors forever, hence
// the bound.
const maxDrainedErrors = 32

type Options struct {
	// Read the GL error state after each upload and fail on anything other
	// than NO_ERROR.
	CheckErrors bool

	// Store bitmaps built by an Uploader from image.Image values bottom row
	// first.
	FlipVertical bool
}

func DefaultOptions() Options {
	return Options{
		CheckErrors: true,
	}
}

// BaseTexture is an RGBA8 2D texture whose storage was filled once, at
// construction. Always handle it through the pointer returned by a
// constructor.
type BaseTexture struct {
	noCopy noCopy

	*Texture

	width  int
	height int
}

// NewBaseTexture uploads the pixels of a platform bitmap. If the bitmap can't
// be described or locked the result is a *BitmapAccessError and nothing is
// left allocated on the device.
func NewBaseTexture(dev gles.Device, bm bitmap.Bitmap) (*BaseTexture, error) {
	return NewBaseTextureWithOptions(dev, bm, DefaultOptions())
}

func NewBaseTextureWithOptions(dev gles.Device, bm bitmap.Bitmap, opts Options) (*BaseTexture, error) {
	if dev == nil {
		panic(fmt.Errorf("texture.NewBaseTexture needs a gles.Device"))
	}
	if bm == nil {
		return nil, bitmapFailure(bitmap.OpGetInfo, bitmap.ResultBadParameter)
	}

	info, res := bm.Info()
	if res.Failed() {
		return nil, bitmapFailure(bitmap.OpGetInfo, res)
	}
	if err := checkDimensions(info.Width, info.Height); err != nil {
		return nil, err
	}
	if info.Format != bitmap.FormatRGBA8888 || info.Stride != info.Width*gles.BytesPerPixel {
		return nil, fmt.Errorf("bitmap format %v with stride %d: %w", info.Format, info.Stride, ErrUnsupportedFormat)
	}

	pixels, res := bm.LockPixels()
	if res.Failed() {
		return nil, bitmapFailure(bitmap.OpLockPixels, res)
	}
	// The upload below is synchronous, so the lock only has to outlive it.
	defer bm.UnlockPixels()

	if err := checkBuffer(info.Width, info.Height, pixels); err != nil {
		return nil, err
	}
	return upload(dev, info.Width, info.Height, pixels, opts)
}

// NewBaseTextureFromPixels uploads a caller-owned RGBA8 buffer. 'pixels' is
// not retained.
func NewBaseTextureFromPixels(dev gles.Device, width, height int, pixels []byte) (*BaseTexture, error) {
	return NewBaseTextureFromPixelsWithOptions(dev, width, height, pixels, DefaultOptions())
}

func NewBaseTextureFromPixelsWithOptions(dev gles.Device, width, height int, pixels []byte, opts Options) (*BaseTexture, error) {
	if dev == nil {
		panic(fmt.Errorf("texture.NewBaseTextureFromPixels needs a gles.Device"))
	}
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if err := checkBuffer(width, height, pixels); err != nil {
		return nil, err
	}
	return upload(dev, width, height, pixels, opts)
}

// Always gles.TEXTURE_2D.
func (bt *BaseTexture) Target() gles.Enum {
	return gles.TEXTURE_2D
}

func (bt *BaseTexture) Width() int {
	return bt.width
}

func (bt *BaseTexture) Height() int {
	return bt.height
}

func (bt *BaseTexture) Size() image.Point {
	return image.Point{X: bt.width, Y: bt.height}
}

func (bt *BaseTexture) String() string {
	return fmt.Sprintf("BaseTexture{handle: %d, %dx%d}", bt.ID(), bt.width, bt.height)
}

func upload(dev gles.Device, width, height int, pixels []byte, opts Options) (*BaseTexture, error) {
	if opts.CheckErrors {
		drainErrors(dev)
	}

	bt := &BaseTexture{
		Texture: newTexture(dev, gles.TEXTURE_2D),
		width:   width,
		height:  height,
	}
	logging.Trace("uploading texture", "handle", bt.id, "width", width, "height", height)

	dev.BindTexture(gles.TEXTURE_2D, bt.id)
	dev.TexImage2D(gles.TEXTURE_2D, width, height, pixels)

	if opts.CheckErrors {
		if code := dev.GetError(); code != gles.NO_ERROR {
			drainErrors(dev)
			bt.Release()
			err := &UploadError{Code: code, Width: width, Height: height}
			logging.Error("texture upload failed", "err", err)
			return nil, err
		}
	}

	return bt, nil
}

func drainErrors(dev gles.Device) {
	for i := 0; i < maxDrainedErrors; i++ {
		code := dev.GetError()
		if code == gles.NO_ERROR {
			return
		}
		logging.Warn("discarding stale gl error", "code", code)
	}
}

func bitmapFailure(op bitmap.Op, res bitmap.Result) error {
	err := &BitmapAccessError{Op: op, Code: res}
	logging.Error("bitmap access failed", "err", err)
	return err
}

// Dimensions must be positive, and the whole image must be addressable with
// the GLsizei the driver takes.
func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > math.MaxInt32/gles.BytesPerPixel/height {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return nil
}

func checkBuffer(width, height int, pixels []byte) error {
	need := width * height * gles.BytesPerPixel
	if len(pixels) < need {
		return fmt.Errorf("have %d bytes, need %d for %dx%d: %w", len(pixels), need, width, height, ErrShortBuffer)
	}
	return nil
}
