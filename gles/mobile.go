package gles

import "golang.org/x/mobile/gl"

// Mobile drives OpenGL ES through a golang.org/x/mobile/gl context, as handed
// out by app.Main on Android and iOS.
type Mobile struct {
	Ctx gl.Context
}

var _ Device = (*Mobile)(nil)

func (m *Mobile) GenTexture() Handle {
	return Handle(m.Ctx.CreateTexture().Value)
}

func (m *Mobile) DeleteTexture(tex Handle) {
	m.Ctx.DeleteTexture(gl.Texture{Value: uint32(tex)})
}

func (m *Mobile) BindTexture(target Enum, tex Handle) {
	m.Ctx.BindTexture(gl.Enum(target), gl.Texture{Value: uint32(tex)})
}

func (m *Mobile) TexParameteri(target, pname Enum, param int) {
	m.Ctx.TexParameteri(gl.Enum(target), gl.Enum(pname), param)
}

func (m *Mobile) TexImage2D(target Enum, width, height int, pixels []byte) {
	m.Ctx.TexImage2D(gl.Enum(target), 0, int(RGBA), width, height, gl.Enum(RGBA), gl.Enum(UNSIGNED_BYTE), pixels)
}

func (m *Mobile) GetError() ErrorCode {
	return ErrorCode(m.Ctx.GetError())
}
