// Package glestest provides an in-memory gles.Device for tests that have no
// GL context available.
package glestest

import (
	"fmt"

	"github.com/MobRulesGames/vrtex/gles"
)

// Call is one recorded device invocation.
type Call struct {
	Name   string
	Target gles.Enum
	Handle gles.Handle
	Args   []int
}

func (c Call) String() string {
	return fmt.Sprintf("%s(target=0x%04x, tex=%d, args=%v)", c.Name, uint32(c.Target), c.Handle, c.Args)
}

// Image is the storage a texture name has after its last upload.
type Image struct {
	Target gles.Enum
	Width  int
	Height int
	Pix    []byte
	Params map[gles.Enum]int
}

// Device records every call and emulates just enough GL state to answer
// questions about what was uploaded. Errors queued with FailNextUpload are
// reported by GetError after the next TexImage2D, in order.
type Device struct {
	Calls []Call

	// Pending GL errors, oldest first.
	Errors []gles.ErrorCode

	next     gles.Handle
	bound    map[gles.Enum]gles.Handle
	images   map[gles.Handle]*Image
	deleted  map[gles.Handle]bool
	failNext []gles.ErrorCode
}

var _ gles.Device = (*Device)(nil)

func New() *Device {
	return &Device{
		bound:   make(map[gles.Enum]gles.Handle),
		images:  make(map[gles.Handle]*Image),
		deleted: make(map[gles.Handle]bool),
	}
}

// Makes the next TexImage2D raise 'code'.
func (d *Device) FailNextUpload(code gles.ErrorCode) {
	d.failNext = append(d.failNext, code)
}

func (d *Device) GenTexture() gles.Handle {
	d.next++
	d.images[d.next] = &Image{Params: make(map[gles.Enum]int)}
	d.Calls = append(d.Calls, Call{Name: "GenTexture", Handle: d.next})
	return d.next
}

func (d *Device) DeleteTexture(tex gles.Handle) {
	d.Calls = append(d.Calls, Call{Name: "DeleteTexture", Handle: tex})
	if _, ok := d.images[tex]; !ok {
		d.Errors = append(d.Errors, gles.INVALID_VALUE)
		return
	}
	delete(d.images, tex)
	d.deleted[tex] = true
	for target, h := range d.bound {
		if h == tex {
			delete(d.bound, target)
		}
	}
}

func (d *Device) BindTexture(target gles.Enum, tex gles.Handle) {
	d.Calls = append(d.Calls, Call{Name: "BindTexture", Target: target, Handle: tex})
	img, ok := d.images[tex]
	if !ok {
		d.Errors = append(d.Errors, gles.INVALID_OPERATION)
		return
	}
	img.Target = target
	d.bound[target] = tex
}

func (d *Device) TexParameteri(target, pname gles.Enum, param int) {
	tex := d.bound[target]
	d.Calls = append(d.Calls, Call{Name: "TexParameteri", Target: target, Handle: tex, Args: []int{int(pname), param}})
	if img, ok := d.images[tex]; ok {
		img.Params[pname] = param
	}
}

func (d *Device) TexImage2D(target gles.Enum, width, height int, pixels []byte) {
	tex := d.bound[target]
	d.Calls = append(d.Calls, Call{Name: "TexImage2D", Target: target, Handle: tex, Args: []int{width, height, len(pixels)}})

	if len(d.failNext) > 0 {
		d.Errors = append(d.Errors, d.failNext[0])
		d.failNext = d.failNext[1:]
		return
	}

	img, ok := d.images[tex]
	if !ok {
		d.Errors = append(d.Errors, gles.INVALID_OPERATION)
		return
	}
	size := width * height * gles.BytesPerPixel
	if width < 0 || height < 0 || len(pixels) < size {
		d.Errors = append(d.Errors, gles.INVALID_VALUE)
		return
	}
	img.Width = width
	img.Height = height
	img.Pix = append([]byte(nil), pixels[:size]...)
}

func (d *Device) GetError() gles.ErrorCode {
	if len(d.Errors) == 0 {
		return gles.NO_ERROR
	}
	code := d.Errors[0]
	d.Errors = d.Errors[1:]
	return code
}

// Returns the storage behind 'tex', or nil if it was never generated or has
// been deleted.
func (d *Device) Image(tex gles.Handle) *Image {
	return d.images[tex]
}

func (d *Device) Bound(target gles.Enum) gles.Handle {
	return d.bound[target]
}

func (d *Device) Deleted(tex gles.Handle) bool {
	return d.deleted[tex]
}

// Number of texture names that are generated and not yet deleted.
func (d *Device) Live() int {
	return len(d.images)
}

// Returns the names of the recorded calls, in order.
func (d *Device) CallNames() []string {
	names := make([]string, 0, len(d.Calls))
	for _, c := range d.Calls {
		names = append(names, c.Name)
	}
	return names
}
