package gles

import (
	"github.com/go-gl-legacy/gl"
	"github.com/runningwild/glop/render"
)

// Legacy drives desktop OpenGL through go-gl-legacy. It is only usable from
// jobs running on a glop render queue.
type Legacy struct{}

var _ Device = Legacy{}

func (Legacy) GenTexture() Handle {
	render.MustBeOnRenderThread()
	gl.Enable(gl.TEXTURE_2D)
	return Handle(gl.GenTexture())
}

func (Legacy) DeleteTexture(tex Handle) {
	render.MustBeOnRenderThread()
	gl.Texture(tex).Delete()
}

func (Legacy) BindTexture(target Enum, tex Handle) {
	render.MustBeOnRenderThread()
	gl.Texture(tex).Bind(gl.GLenum(target))
}

func (Legacy) TexParameteri(target, pname Enum, param int) {
	render.MustBeOnRenderThread()
	gl.TexParameterf(gl.GLenum(target), gl.GLenum(pname), float32(param))
}

func (Legacy) TexImage2D(target Enum, width, height int, pixels []byte) {
	render.MustBeOnRenderThread()
	noMipMap := 0
	border := 0
	gl.TexImage2D(gl.GLenum(target), noMipMap, gl.RGBA, width, height, border, gl.GLenum(gl.RGBA), gl.GLenum(gl.UNSIGNED_BYTE), pixels)
}

func (Legacy) GetError() ErrorCode {
	render.MustBeOnRenderThread()
	return ErrorCode(gl.GetError())
}
