package texture_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/MobRulesGames/vrtex/bitmap"
	"github.com/MobRulesGames/vrtex/bitmap/bitmaptest"
	"github.com/MobRulesGames/vrtex/gles"
	"github.com/MobRulesGames/vrtex/gles/glestest"
	"github.com/MobRulesGames/vrtex/logging"
	"github.com/MobRulesGames/vrtex/texture"
	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every texel is opaque magenta.
func givenPixels(width, height int) []byte {
	pix := make([]byte, 0, width*height*4)
	for i := 0; i < width*height; i++ {
		pix = append(pix, 255, 0, 255, 255)
	}
	return pix
}

func quietly(t *testing.T) {
	undo := logging.Redirect(io.Discard)
	t.Cleanup(undo)
}

func TestFromPixels(t *testing.T) {
	quietly(t)

	t.Run("a 2x2 buffer uploads as a 2x2 texture", func(t *testing.T) {
		require := require.New(t)
		dev := glestest.New()
		pix := givenPixels(2, 2)

		tex, err := texture.NewBaseTextureFromPixels(dev, 2, 2, pix)

		require.NoError(err)
		require.NotNil(tex)
		assert.Equal(t, gles.TEXTURE_2D, tex.Target())
		assert.Equal(t, 2, tex.Width())
		assert.Equal(t, 2, tex.Height())
		assert.NotZero(t, tex.ID())

		img := dev.Image(tex.ID())
		require.NotNil(img)
		assert.Equal(t, gles.TEXTURE_2D, img.Target)
		assert.Equal(t, 2, img.Width)
		assert.Equal(t, 2, img.Height)
		assert.Equal(t, pix, img.Pix)
		assert.Equal(t, tex.ID(), dev.Bound(gles.TEXTURE_2D))
	})

	t.Run("binds before uploading", func(t *testing.T) {
		dev := glestest.New()

		_, err := texture.NewBaseTextureFromPixels(dev, 1, 1, givenPixels(1, 1))
		require.NoError(t, err)

		want := []string{
			"GenTexture",
			"BindTexture",
			"TexParameteri",
			"TexParameteri",
			"TexParameteri",
			"TexParameteri",
			"BindTexture",
			"TexImage2D",
		}
		if diff := cmp.Diff(want, dev.CallNames()); diff != "" {
			t.Errorf("device calls mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sets linear filtering and edge clamping", func(t *testing.T) {
		dev := glestest.New()

		tex, err := texture.NewBaseTextureFromPixels(dev, 1, 1, givenPixels(1, 1))
		require.NoError(t, err)

		want := map[gles.Enum]int{
			gles.TEXTURE_MIN_FILTER: int(gles.LINEAR),
			gles.TEXTURE_MAG_FILTER: int(gles.LINEAR),
			gles.TEXTURE_WRAP_S:     int(gles.CLAMP_TO_EDGE),
			gles.TEXTURE_WRAP_T:     int(gles.CLAMP_TO_EDGE),
		}
		if diff := cmp.Diff(want, dev.Image(tex.ID()).Params); diff != "" {
			t.Errorf("texture parameters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("accepts a buffer longer than needed", func(t *testing.T) {
		dev := glestest.New()
		pix := givenPixels(3, 1)

		tex, err := texture.NewBaseTextureFromPixels(dev, 1, 1, pix)

		require.NoError(t, err)
		assert.Equal(t, pix[:4], dev.Image(tex.ID()).Pix)
	})

	t.Run("rejects a short buffer without touching the device", func(t *testing.T) {
		dev := glestest.New()

		tex, err := texture.NewBaseTextureFromPixels(dev, 2, 2, givenPixels(1, 3))

		assert.Nil(t, tex)
		assert.ErrorIs(t, err, texture.ErrShortBuffer)
		assert.Empty(t, dev.Calls)
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		dev := glestest.New()

		for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 2}} {
			tex, err := texture.NewBaseTextureFromPixels(dev, dims[0], dims[1], nil)
			assert.Nil(t, tex)
			assert.ErrorIs(t, err, texture.ErrInvalidDimensions)
		}
		assert.Empty(t, dev.Calls)
	})

	t.Run("rejects dimensions whose byte size overflows", func(t *testing.T) {
		dev := glestest.New()

		for _, dims := range [][2]int{{1 << 31, 1 << 31}, {(1 << 62) + 1, 1}, {1 << 15, 1 << 15}, {1, 1 << 30}} {
			tex, err := texture.NewBaseTextureFromPixels(dev, dims[0], dims[1], givenPixels(1, 1))
			assert.Nil(t, tex)
			assert.ErrorIs(t, err, texture.ErrInvalidDimensions)
		}
		assert.Empty(t, dev.Calls)
	})

	t.Run("does not retain the caller's buffer", func(t *testing.T) {
		dev := glestest.New()
		pix := givenPixels(1, 1)

		tex, err := texture.NewBaseTextureFromPixels(dev, 1, 1, pix)
		require.NoError(t, err)
		pix[0] = 0

		assert.Equal(t, byte(255), dev.Image(tex.ID()).Pix[0])
	})

	t.Run("panics without a device", func(t *testing.T) {
		assert.Panics(t, func() {
			texture.NewBaseTextureFromPixels(nil, 1, 1, givenPixels(1, 1))
		})
	})
}

func TestUploadErrors(t *testing.T) {
	quietly(t)

	t.Run("a gl error after upload fails construction", func(t *testing.T) {
		dev := glestest.New()
		dev.FailNextUpload(gles.OUT_OF_MEMORY)

		tex, err := texture.NewBaseTextureFromPixels(dev, 2, 2, givenPixels(2, 2))

		assert.Nil(t, tex)
		var uploadErr *texture.UploadError
		require.True(t, errors.As(err, &uploadErr))
		assert.Equal(t, gles.OUT_OF_MEMORY, uploadErr.Code)
		assert.Equal(t, 2, uploadErr.Width)
		assert.Contains(t, err.Error(), "GL_OUT_OF_MEMORY")

		t.Run("and deletes the texture name", func(t *testing.T) {
			assert.Zero(t, dev.Live())
			assert.True(t, dev.Deleted(1))
		})
	})

	t.Run("stale errors are drained and logged, not blamed on the upload", func(t *testing.T) {
		buf := &bytes.Buffer{}
		undo := logging.Redirect(buf)
		defer undo()

		dev := glestest.New()
		dev.Errors = []gles.ErrorCode{gles.INVALID_ENUM, gles.INVALID_OPERATION}

		tex, err := texture.NewBaseTextureFromPixels(dev, 1, 1, givenPixels(1, 1))

		require.NoError(t, err)
		assert.NotNil(t, tex)
		assert.Contains(t, buf.String(), "discarding stale gl error")
	})

	t.Run("errors go unnoticed when checking is off", func(t *testing.T) {
		dev := glestest.New()
		dev.FailNextUpload(gles.INVALID_VALUE)
		opts := texture.DefaultOptions()
		opts.CheckErrors = false

		tex, err := texture.NewBaseTextureFromPixelsWithOptions(dev, 1, 1, givenPixels(1, 1), opts)

		require.NoError(t, err)
		assert.NotNil(t, tex)
		assert.Equal(t, gles.INVALID_VALUE, dev.GetError())
	})
}

func TestRelease(t *testing.T) {
	quietly(t)

	dev := glestest.New()
	tex, err := texture.NewBaseTextureFromPixels(dev, 1, 1, givenPixels(1, 1))
	require.NoError(t, err)
	id := tex.ID()

	require.NoError(t, tex.Bind())
	tex.Release()
	tex.Release()

	assert.True(t, tex.Released())
	assert.Zero(t, tex.ID())
	assert.True(t, dev.Deleted(id))
	assert.Equal(t, 1, countCalls(dev, "DeleteTexture"))
	assert.ErrorIs(t, tex.Bind(), texture.ErrReleased)
	assert.Equal(t, gles.TEXTURE_2D, tex.Target())
}

func countCalls(dev *glestest.Device, name string) int {
	n := 0
	for _, c := range dev.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

func BitmapSpec() {
	dev := glestest.New()

	Convey("a bitmap whose info can't be read", func() {
		bm := bitmaptest.FailingInfo(bitmap.ResultBadParameter)
		tex, err := texture.NewBaseTexture(dev, bm)

		Convey("fails with a bitmap access error", func() {
			So(tex, ShouldBeNil)
			var accessErr *texture.BitmapAccessError
			So(errors.As(err, &accessErr), ShouldBeTrue)
			So(accessErr.Op, ShouldEqual, bitmap.OpGetInfo)
			So(accessErr.Code, ShouldEqual, bitmap.ResultBadParameter)
			So(err.Error(), ShouldEqual, "AndroidBitmap_getInfo() failed! error = -1")
		})

		Convey("leaves nothing on the device", func() {
			So(dev.Calls, ShouldBeEmpty)
			So(dev.Live(), ShouldEqual, 0)
			So(bm.Locks, ShouldEqual, 0)
		})
	})

	Convey("a bitmap whose pixels can't be locked", func() {
		bm := bitmaptest.FailingLock(bitmap.ResultJniException)
		tex, err := texture.NewBaseTexture(dev, bm)

		Convey("fails with a bitmap access error carrying the platform code", func() {
			So(tex, ShouldBeNil)
			var accessErr *texture.BitmapAccessError
			So(errors.As(err, &accessErr), ShouldBeTrue)
			So(accessErr.Op, ShouldEqual, bitmap.OpLockPixels)
			So(accessErr.Code, ShouldEqual, bitmap.ResultJniException)
			So(err.Error(), ShouldContainSubstring, "error = -2")
		})

		Convey("leaves nothing on the device", func() {
			So(dev.Calls, ShouldBeEmpty)
			So(dev.Live(), ShouldEqual, 0)
			So(bm.Unlocks, ShouldEqual, 0)
		})
	})

	Convey("a nil bitmap is a bad parameter", func() {
		_, err := texture.NewBaseTexture(dev, nil)
		var accessErr *texture.BitmapAccessError
		So(errors.As(err, &accessErr), ShouldBeTrue)
		So(accessErr.Code, ShouldEqual, bitmap.ResultBadParameter)
	})

	Convey("a bitmap in a format other than RGBA_8888 is refused", func() {
		bm := bitmaptest.RGBA(2, 2, make([]byte, 8))
		bm.Meta.Format = bitmap.FormatRGB565
		bm.Meta.Stride = 4

		_, err := texture.NewBaseTexture(dev, bm)
		So(errors.Is(err, texture.ErrUnsupportedFormat), ShouldBeTrue)
		So(bm.Locks, ShouldEqual, 0)
		So(dev.Calls, ShouldBeEmpty)
	})

	Convey("a bitmap too large to address is refused before locking", func() {
		bm := bitmaptest.RGBA(1<<16, 1<<16, givenPixels(1, 1))

		_, err := texture.NewBaseTexture(dev, bm)
		So(errors.Is(err, texture.ErrInvalidDimensions), ShouldBeTrue)
		So(bm.Locks, ShouldEqual, 0)
		So(dev.Calls, ShouldBeEmpty)
	})

	Convey("a bitmap whose locked buffer is too small is refused and unlocked", func() {
		bm := bitmaptest.RGBA(2, 2, givenPixels(1, 1))

		_, err := texture.NewBaseTexture(dev, bm)
		So(errors.Is(err, texture.ErrShortBuffer), ShouldBeTrue)
		So(bm.Balanced(), ShouldBeTrue)
		So(dev.Live(), ShouldEqual, 0)
	})

	Convey("a valid 3x2 bitmap", func() {
		pix := givenPixels(3, 2)
		bm := bitmaptest.RGBA(3, 2, pix)
		tex, err := texture.NewBaseTexture(dev, bm)

		Convey("uploads at the bitmap's size", func() {
			So(err, ShouldBeNil)
			So(tex.Width(), ShouldEqual, 3)
			So(tex.Height(), ShouldEqual, 2)
			So(tex.Target(), ShouldEqual, gles.TEXTURE_2D)

			img := dev.Image(tex.ID())
			So(img.Width, ShouldEqual, 3)
			So(img.Height, ShouldEqual, 2)
			So(len(img.Pix), ShouldEqual, 3*2*4)
			So(img.Pix, ShouldResemble, pix)
		})

		Convey("is unlocked once the upload is done", func() {
			So(bm.Locks, ShouldEqual, 1)
			So(bm.Balanced(), ShouldBeTrue)
		})

		Convey("can be uploaded again into an independent texture", func() {
			again, err := texture.NewBaseTexture(dev, bm)
			So(err, ShouldBeNil)
			So(again.ID(), ShouldNotEqual, tex.ID())
			So(dev.Image(again.ID()).Pix, ShouldResemble, dev.Image(tex.ID()).Pix)
			So(dev.Live(), ShouldEqual, 2)

			Convey("and releasing one leaves the other intact", func() {
				tex.Release()
				So(dev.Live(), ShouldEqual, 1)
				So(dev.Image(again.ID()), ShouldNotBeNil)
			})
		})
	})

	Convey("a bitmap whose upload raises a gl error", func() {
		bm := bitmaptest.RGBA(1, 1, givenPixels(1, 1))
		dev.FailNextUpload(gles.INVALID_VALUE)

		tex, err := texture.NewBaseTexture(dev, bm)

		So(tex, ShouldBeNil)
		var uploadErr *texture.UploadError
		So(errors.As(err, &uploadErr), ShouldBeTrue)
		So(bm.Balanced(), ShouldBeTrue)
		So(dev.Live(), ShouldEqual, 0)
	})
}

func TestFromBitmap(t *testing.T) {
	quietly(t)
	Convey("texture.NewBaseTexture specification", t, BitmapSpec)
}
