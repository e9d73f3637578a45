// Package shader defines the typed parameter surface of the scene shader:
// the set of recognized uniforms and the sink interface the scene manager
// pushes transform, color, texture and material state through before each
// draw call.
package shader

import "landscape-renderer/internal/mathutil"

// Uniform identifies a recognized shader parameter. Using an enumeration
// instead of raw name strings means an unknown parameter is a compile
// error, not a silent no-op at the sink.
type Uniform int

const (
	UModel Uniform = iota
	UView
	UProjection
	UViewPosition
	UObjectColor
	UUseTexture
	UUseLighting
	UObjectTexture
	UUVScale
	UMaterialDiffuse
	UMaterialSpecular
	UMaterialShininess

	uniformCount
)

var uniformNames = [uniformCount]string{
	"model",
	"view",
	"projection",
	"viewPosition",
	"objectColor",
	"bUseTexture",
	"bUseLighting",
	"objectTexture",
	"UVscale",
	"material.diffuseColor",
	"material.specularColor",
	"material.shininess",
}

// String returns the GLSL-style name of the uniform.
func (u Uniform) String() string {
	if u < 0 || u >= uniformCount {
		return "unknown"
	}
	return uniformNames[u]
}

// RGBA is a flat shading color with straight (non-premultiplied) alpha,
// components in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// DirectionalLight is a scene-wide light with a direction but no position,
// emulating sunlight.
type DirectionalLight struct {
	Direction mathutil.Vec3
	Ambient   mathutil.Vec3
	Diffuse   mathutil.Vec3
	Specular  mathutil.Vec3
	Active    bool
}

// PointLight radiates from a world-space position.
type PointLight struct {
	Position mathutil.Vec3
	Ambient  mathutil.Vec3
	Diffuse  mathutil.Vec3
	Specular mathutil.Vec3
	Active   bool
}

// MaxPointLights is the size of the point-light array in the shader.
const MaxPointLights = 4

// ParamSink receives shader parameter writes. The software device
// implements it; tests substitute a recording sink. Writes take effect on
// the next draw call; there is no validation beyond the typed surface.
type ParamSink interface {
	SetMat4(u Uniform, m mathutil.Mat4)
	SetVec2(u Uniform, x, y float64)
	SetVec3(u Uniform, v mathutil.Vec3)
	SetColor(u Uniform, c RGBA)
	SetFloat(u Uniform, f float64)
	SetBool(u Uniform, b bool)
	SetSampler(u Uniform, slot int)
	SetDirectionalLight(l DirectionalLight)
	SetPointLight(index int, l PointLight)
}
