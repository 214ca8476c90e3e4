// Package bitmaptest provides scripted bitmaps for exercising the failure
// paths of code that reads from the platform imaging API.
package bitmaptest

import "github.com/MobRulesGames/vrtex/bitmap"

// Bitmap answers Info and LockPixels with whatever it was given and counts
// how it was used.
type Bitmap struct {
	Meta      bitmap.Info
	InfoRes   bitmap.Result
	Pix       []byte
	LockRes   bitmap.Result
	Locks     int
	Unlocks   int
	InfoCalls int
}

var _ bitmap.Bitmap = (*Bitmap)(nil)

// Returns a tightly packed RGBA_8888 bitmap over 'pix'.
func RGBA(width, height int, pix []byte) *Bitmap {
	return &Bitmap{
		Meta: bitmap.Info{
			Width:  width,
			Height: height,
			Stride: width * 4,
			Format: bitmap.FormatRGBA8888,
		},
		Pix: pix,
	}
}

// Returns a bitmap whose Info call fails with 'res'.
func FailingInfo(res bitmap.Result) *Bitmap {
	return &Bitmap{InfoRes: res}
}

// Returns a valid 1x1 bitmap whose LockPixels call fails with 'res'.
func FailingLock(res bitmap.Result) *Bitmap {
	bm := RGBA(1, 1, []byte{255, 0, 255, 255})
	bm.LockRes = res
	return bm
}

func (bm *Bitmap) Info() (bitmap.Info, bitmap.Result) {
	bm.InfoCalls++
	if bm.InfoRes.Failed() {
		return bitmap.Info{}, bm.InfoRes
	}
	return bm.Meta, bitmap.ResultSuccess
}

func (bm *Bitmap) LockPixels() ([]byte, bitmap.Result) {
	if bm.LockRes.Failed() {
		return nil, bm.LockRes
	}
	bm.Locks++
	return bm.Pix, bitmap.ResultSuccess
}

func (bm *Bitmap) UnlockPixels() {
	bm.Unlocks++
}

// True when every successful lock was matched by an unlock.
func (bm *Bitmap) Balanced() bool {
	return bm.Locks == bm.Unlocks
}
