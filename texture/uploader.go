package texture

import (
	"fmt"
	"image"

	"github.com/MobRulesGames/vrtex/bitmap"
	"github.com/MobRulesGames/vrtex/gles"
	"github.com/MobRulesGames/vrtex/logging"
	"github.com/runningwild/glop/render"
)

// A Runner executes fn on the thread that owns the GL context and returns
// once fn has finished.
type Runner interface {
	Run(fn func())
}

type RunnerFunc func(fn func())

func (f RunnerFunc) Run(fn func()) {
	f(fn)
}

// Immediate runs on the calling goroutine; use it when the caller already
// owns the context, e.g. from inside a render job or a mobile app's paint
// callback.
var Immediate Runner = RunnerFunc(func(fn func()) {
	fn()
})

// RenderThread queues fn on 'queue' and purges it so the caller observes the
// result. It must not be used from a job already running on that queue.
func RenderThread(queue render.RenderQueueInterface) Runner {
	return RunnerFunc(func(fn func()) {
		queue.Queue(func(render.RenderQueueState) {
			fn()
		})
		queue.Purge()
	})
}

// Uploader builds textures on a device, routing every device call through
// its Runner.
type Uploader struct {
	runner Runner
	dev    gles.Device
	opts   Options
}

func MakeUploader(runner Runner, dev gles.Device, opts Options) *Uploader {
	if runner == nil || dev == nil {
		panic(fmt.Errorf("texture.MakeUploader needs a Runner and a gles.Device"))
	}
	return &Uploader{
		runner: runner,
		dev:    dev,
		opts:   opts,
	}
}

func (u *Uploader) Options() Options {
	return u.opts
}

func (u *Uploader) FromBitmap(bm bitmap.Bitmap) (*BaseTexture, error) {
	var tex *BaseTexture
	var err error
	u.runner.Run(func() {
		tex, err = NewBaseTextureWithOptions(u.dev, bm, u.opts)
	})
	return tex, err
}

func (u *Uploader) FromPixels(width, height int, pixels []byte) (*BaseTexture, error) {
	var tex *BaseTexture
	var err error
	u.runner.Run(func() {
		tex, err = NewBaseTextureFromPixelsWithOptions(u.dev, width, height, pixels, u.opts)
	})
	return tex, err
}

func (u *Uploader) FromImage(im image.Image) (*BaseTexture, error) {
	return u.FromBitmap(bitmap.FromImage(im, u.bitmapOptions()))
}

// Decodes 'path' on the calling goroutine and uploads it through the Runner.
func (u *Uploader) FromFile(path string) (*BaseTexture, error) {
	logging.Trace("texture uploader: loading", "path", path)
	bm, err := bitmap.Load(path, u.bitmapOptions())
	if err != nil {
		return nil, err
	}

	tex, err := u.FromBitmap(bm)
	if err != nil {
		return nil, fmt.Errorf("couldn't upload %q: %w", path, err)
	}
	return tex, nil
}

func (u *Uploader) Release(tex *BaseTexture) {
	if tex == nil {
		return
	}
	u.runner.Run(tex.Release)
}

func (u *Uploader) bitmapOptions() bitmap.Options {
	return bitmap.Options{
		FlipVertical: u.opts.FlipVertical,
	}
}
