// Package scene prepares and renders the fixed outdoor landscape: it loads
// the scene's textures, materials and primitive meshes once, then replays
// an unconditional script of transform + shading-state + draw triples.
package scene

import (
	"log"

	"landscape-renderer/internal/material"
	"landscape-renderer/internal/mathutil"
	"landscape-renderer/internal/mesh"
	"landscape-renderer/internal/shader"
	"landscape-renderer/internal/texture"
)

// Manager owns the texture registry and material catalog and pushes
// per-draw state into the shader-parameter sink. It has no frame-to-frame
// state: every render pass replays the same script.
type Manager struct {
	sink      shader.ParamSink
	textures  *texture.Registry
	materials material.Catalog
	shapes    *mesh.Shapes
}

// NewManager wires the scene to a parameter sink, a texture registry and a
// shape store (all typically backed by the same software device).
func NewManager(sink shader.ParamSink, reg *texture.Registry, shapes *mesh.Shapes) *Manager {
	return &Manager{sink: sink, textures: reg, shapes: shapes}
}

// sceneTextures maps texture-directory file stems to the tags the render
// script references.
var sceneTextures = []struct {
	stem, tag string
}{
	{"leaves3", "leaves"},
	{"leaves", "pineleaves"},
	{"log", "log"},
	{"stone", "stone"},
}

// PrepareScene runs the one-time preparation phase: materials, lights,
// textures and mesh uploads. Call once before RenderScene.
func (m *Manager) PrepareScene(texIndex *texture.Index) {
	m.defineObjectMaterials()
	m.setupSceneLights()
	m.loadSceneTextures(texIndex)

	// One upload per shape regardless of how many instances are drawn.
	m.shapes.LoadPlane()
	m.shapes.LoadCylinder()
	m.shapes.LoadSphere()
	m.shapes.LoadPyramid3()
}

// Release frees the scene's device textures. Call once at teardown.
func (m *Manager) Release() {
	m.textures.ReleaseAll()
}

func (m *Manager) loadSceneTextures(idx *texture.Index) {
	for _, t := range sceneTextures {
		path, ok := idx.ResolvePath(t.stem)
		if !ok {
			log.Printf("scene: texture %q: no file named %q in texture directory", t.tag, t.stem)
			continue
		}
		if err := m.textures.Register(path, t.tag); err != nil {
			log.Printf("scene: %v", err)
		}
	}
	m.textures.BindAll()
}

func (m *Manager) defineObjectMaterials() {
	m.materials.Define("wood",
		mathutil.Vec3{0.2, 0.2, 0.3}, mathutil.Vec3{0, 0, 0}, 0.1)
	m.materials.Define("greenery",
		mathutil.Vec3{0.8, 0.8, 0.9}, mathutil.Vec3{0.2, 0.2, 0.2}, 1.25)
	m.materials.Define("sky",
		mathutil.Vec3{1, 1, 1}, mathutil.Vec3{0.1, 0.1, 0.1}, 1.5)
}

func (m *Manager) setupSceneLights() {
	m.sink.SetBool(shader.UUseLighting, true)

	// Directional light emulating sunlight.
	m.sink.SetDirectionalLight(shader.DirectionalLight{
		Direction: mathutil.Vec3{-4, -1, -1},
		Ambient:   mathutil.Vec3{0.5, 0.5, 0.5},
		Diffuse:   mathutil.Vec3{2, 2, 2},
		Specular:  mathutil.Vec3{0, 0, 0},
		Active:    true,
	})

	// Cyan fill light over the far mountains.
	m.sink.SetPointLight(1, shader.PointLight{
		Position: mathutil.Vec3{30, 20, -80},
		Ambient:  mathutil.Vec3{0.05, 0.1, 0.1},
		Diffuse:  mathutil.Vec3{0.05, 0.8, 0.8},
		Specular: mathutil.Vec3{0.05, 0.5, 0.5},
		Active:   true,
	})
}

// SetTransformations composes the model matrix from scale, per-axis
// rotation in degrees and translation, and pushes it to the sink for the
// next draw call.
func (m *Manager) SetTransformations(scale mathutil.Vec3, rotXDeg, rotYDeg, rotZDeg float64, position mathutil.Vec3) {
	m.sink.SetMat4(shader.UModel,
		mathutil.ComposeTransform(scale, rotXDeg, rotYDeg, rotZDeg, position))
}

// SetShaderColor sets a flat color for the next draw and disables
// texturing.
func (m *Manager) SetShaderColor(r, g, b, a float64) {
	m.sink.SetBool(shader.UUseTexture, false)
	m.sink.SetColor(shader.UObjectColor, shader.RGBA{R: r, G: g, B: b, A: a})
}

// SetShaderTexture enables texturing for the next draw using the slot
// registered under tag. An unknown tag pushes the -1 sentinel, which draws
// as the flat object color; that is a degraded frame, so it is logged.
func (m *Manager) SetShaderTexture(tag string) {
	m.sink.SetBool(shader.UUseTexture, true)
	slot := m.textures.LookupSlot(tag)
	if slot == texture.NoSlot {
		log.Printf("scene: texture %q not registered, drawing untextured", tag)
	}
	m.sink.SetSampler(shader.UObjectTexture, slot)
}

// SetTextureUVScale sets the UV tiling scale for the next draw.
func (m *Manager) SetTextureUVScale(u, v float64) {
	m.sink.SetVec2(shader.UUVScale, u, v)
}

// SetShaderMaterial pushes the material registered under tag. An unknown
// tag leaves the previous material state in place and is logged.
func (m *Manager) SetShaderMaterial(tag string) {
	if m.materials.Len() == 0 {
		return
	}
	mat, ok := m.materials.Lookup(tag)
	if !ok {
		log.Printf("scene: material %q not defined, keeping previous material", tag)
		return
	}
	m.sink.SetVec3(shader.UMaterialDiffuse, mat.Diffuse)
	m.sink.SetVec3(shader.UMaterialSpecular, mat.Specular)
	m.sink.SetFloat(shader.UMaterialShininess, mat.Shininess)
}
