package texture

import (
	"errors"
	"fmt"

	"github.com/MobRulesGames/vrtex/bitmap"
	"github.com/MobRulesGames/vrtex/gles"
)

var (
	ErrInvalidDimensions = errors.New("texture dimensions must be positive")
	ErrShortBuffer       = errors.New("pixel buffer is smaller than width*height*4")
	ErrUnsupportedFormat = errors.New("bitmap is not tightly packed RGBA_8888")
	ErrReleased          = errors.New("texture has been released")
)

// BitmapAccessError reports that the platform refused to describe or lock a
// bitmap.
type BitmapAccessError struct {
	Op   bitmap.Op
	Code bitmap.Result
}

func (e *BitmapAccessError) Error() string {
	return fmt.Sprintf("%s() failed! error = %d", e.Op, int(e.Code))
}

// UploadError reports the GL error raised by a TexImage2D call. The texture
// name involved has already been deleted when this is returned.
type UploadError struct {
	Code          gles.ErrorCode
	Width, Height int
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("uploading %dx%d RGBA texture failed: %v", e.Width, e.Height, e.Code)
}
