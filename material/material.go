// Package material links textures and shader uniforms by name.
package material

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/MobRulesGames/mathgl"
	"github.com/MobRulesGames/vrtex/texture"
)

var ErrNotFound = errors.New("not found")

type ShaderType int

const (
	UnlitShader ShaderType = iota
	UnlitHorizontalStereoShader
	UnlitVerticalStereoShader
	OESShader
	OESHorizontalStereoShader
	OESVerticalStereoShader
)

func (st ShaderType) String() string {
	switch st {
	case UnlitShader:
		return "unlit"
	case UnlitHorizontalStereoShader:
		return "unlit-horizontal-stereo"
	case UnlitVerticalStereoShader:
		return "unlit-vertical-stereo"
	case OESShader:
		return "oes"
	case OESHorizontalStereoShader:
		return "oes-horizontal-stereo"
	case OESVerticalStereoShader:
		return "oes-vertical-stereo"
	}
	panic(fmt.Errorf("unknown ShaderType: %d", int(st)))
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// A Material is owned by one scene object at a time. Textures it refers to
// may be shared between materials; releasing them is the owner's business.
type Material struct {
	noCopy noCopy

	shaderType ShaderType
	textures   map[string]*texture.Texture
	floats     map[string]float32
	vec2s      map[string]mathgl.Vec2
	vec3s      map[string]mathgl.Vec3
	vec4s      map[string]mathgl.Vec4
	mat4s      map[string]mathgl.Mat4
}

// New returns a material with a white "color" and an "opacity" of 1.
func New(shaderType ShaderType) *Material {
	m := &Material{
		shaderType: shaderType,
		textures:   make(map[string]*texture.Texture),
		floats:     make(map[string]float32),
		vec2s:      make(map[string]mathgl.Vec2),
		vec3s:      make(map[string]mathgl.Vec3),
		vec4s:      make(map[string]mathgl.Vec4),
		mat4s:      make(map[string]mathgl.Mat4),
	}
	m.vec3s["color"] = mathgl.Vec3{X: 1, Y: 1, Z: 1}
	m.floats["opacity"] = 1
	return m
}

func (m *Material) ShaderType() ShaderType {
	return m.shaderType
}

func (m *Material) SetShaderType(shaderType ShaderType) {
	m.shaderType = shaderType
}

func (m *Material) Texture(key string) (*texture.Texture, error) {
	return lookup(m.textures, "Texture", key)
}

// Any kind of texture can be stored; pass a BaseTexture's embedded Texture.
func (m *Material) SetTexture(key string, tex *texture.Texture) {
	m.textures[key] = tex
}

// Returns the texture keys in sorted order.
func (m *Material) TextureKeys() []string {
	return slices.Sorted(maps.Keys(m.textures))
}

func (m *Material) Float(key string) (float32, error) {
	return lookup(m.floats, "Float", key)
}

func (m *Material) SetFloat(key string, value float32) {
	m.floats[key] = value
}

func (m *Material) Vec2(key string) (mathgl.Vec2, error) {
	return lookup(m.vec2s, "Vec2", key)
}

func (m *Material) SetVec2(key string, vector mathgl.Vec2) {
	m.vec2s[key] = vector
}

func (m *Material) Vec3(key string) (mathgl.Vec3, error) {
	return lookup(m.vec3s, "Vec3", key)
}

func (m *Material) SetVec3(key string, vector mathgl.Vec3) {
	m.vec3s[key] = vector
}

func (m *Material) Vec4(key string) (mathgl.Vec4, error) {
	return lookup(m.vec4s, "Vec4", key)
}

func (m *Material) SetVec4(key string, vector mathgl.Vec4) {
	m.vec4s[key] = vector
}

func (m *Material) Mat4(key string) (mathgl.Mat4, error) {
	return lookup(m.mat4s, "Mat4", key)
}

func (m *Material) SetMat4(key string, matrix mathgl.Mat4) {
	m.mat4s[key] = matrix
}

func lookup[V any](values map[string]V, getter, key string) (V, error) {
	v, ok := values[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("Material.%s(%q): %w", getter, key, ErrNotFound)
	}
	return v, nil
}
