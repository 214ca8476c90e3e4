// Package gles is the slice of the OpenGL (ES) texture API that the texture
// package drives. Values match the GL headers so they can be handed to any
// binding without translation.
package gles

import "fmt"

type Enum uint32

// Handle is a texture name as assigned by the driver. Zero is never a valid
// texture.
type Handle uint32

type ErrorCode uint32

const (
	TEXTURE_2D         Enum = 0x0DE1
	RGBA               Enum = 0x1908
	UNSIGNED_BYTE      Enum = 0x1401
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	LINEAR             Enum = 0x2601
	CLAMP_TO_EDGE      Enum = 0x812F
)

const (
	NO_ERROR          ErrorCode = 0
	INVALID_ENUM      ErrorCode = 0x0500
	INVALID_VALUE     ErrorCode = 0x0501
	INVALID_OPERATION ErrorCode = 0x0502
	OUT_OF_MEMORY     ErrorCode = 0x0505
)

// Bytes per RGBA8 texel.
const BytesPerPixel = 4

func (code ErrorCode) String() string {
	switch code {
	case NO_ERROR:
		return "GL_NO_ERROR"
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	}
	return fmt.Sprintf("GL error 0x%04x", uint32(code))
}

// A Device issues texture calls against whatever GL context is current. None
// of the methods synchronize; callers must be on the thread that owns the
// context.
type Device interface {
	GenTexture() Handle
	DeleteTexture(tex Handle)
	BindTexture(target Enum, tex Handle)
	TexParameteri(target, pname Enum, param int)

	// Uploads mip level 0 of the bound texture as RGBA/UNSIGNED_BYTE.
	TexImage2D(target Enum, width, height int, pixels []byte)

	GetError() ErrorCode
}
