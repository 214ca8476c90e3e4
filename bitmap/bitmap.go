// Package bitmap is the platform imaging surface the texture package reads
// pixels through. It mirrors the Android NDK bitmap API: a bitmap reports its
// geometry, and its pixel storage must be locked before it can be read.
package bitmap

import "fmt"

// Result is a platform status code. Failures are negative.
type Result int

const (
	ResultSuccess          Result = 0
	ResultBadParameter     Result = -1
	ResultJniException     Result = -2
	ResultAllocationFailed Result = -3
)

func (r Result) Failed() bool {
	return r < 0
}

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultBadParameter:
		return "bad parameter"
	case ResultJniException:
		return "jni exception"
	case ResultAllocationFailed:
		return "allocation failed"
	}
	return fmt.Sprintf("result %d", int(r))
}

type Format int

const (
	FormatNone     Format = 0
	FormatRGBA8888 Format = 1
	FormatRGB565   Format = 4
	FormatRGBA4444 Format = 7
	FormatA8       Format = 8
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "NONE"
	case FormatRGBA8888:
		return "RGBA_8888"
	case FormatRGB565:
		return "RGB_565"
	case FormatRGBA4444:
		return "RGBA_4444"
	case FormatA8:
		return "A_8"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Op names a platform call, for error reporting.
type Op string

const (
	OpGetInfo    Op = "AndroidBitmap_getInfo"
	OpLockPixels Op = "AndroidBitmap_lockPixels"
)

type Info struct {
	Width  int
	Height int
	// Bytes per row.
	Stride int
	Format Format
}

// A Bitmap is owned by the platform. The slice returned by LockPixels is only
// valid until UnlockPixels.
type Bitmap interface {
	Info() (Info, Result)
	LockPixels() ([]byte, Result)
	UnlockPixels()
}
