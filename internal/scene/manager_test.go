package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscape-renderer/internal/mathutil"
	"landscape-renderer/internal/mesh"
	"landscape-renderer/internal/shader"
	"landscape-renderer/internal/texture"
)

// event is one parameter write or draw, in order of arrival.
type event struct {
	kind string
	u    shader.Uniform
}

// recordingSink captures every parameter write.
type recordingSink struct {
	events   []event
	bools    map[shader.Uniform]bool
	samplers []int
	colors   []shader.RGBA
	vec3s    map[shader.Uniform]mathutil.Vec3
	floats   map[shader.Uniform]float64
	mat4s    []mathutil.Mat4
	dir      shader.DirectionalLight
	points   map[int]shader.PointLight
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		bools:  make(map[shader.Uniform]bool),
		vec3s:  make(map[shader.Uniform]mathutil.Vec3),
		floats: make(map[shader.Uniform]float64),
		points: make(map[int]shader.PointLight),
	}
}

func (s *recordingSink) SetMat4(u shader.Uniform, m mathutil.Mat4) {
	s.events = append(s.events, event{"mat4", u})
	s.mat4s = append(s.mat4s, m)
}

func (s *recordingSink) SetVec2(u shader.Uniform, x, y float64) {
	s.events = append(s.events, event{"vec2", u})
}

func (s *recordingSink) SetVec3(u shader.Uniform, v mathutil.Vec3) {
	s.events = append(s.events, event{"vec3", u})
	s.vec3s[u] = v
}

func (s *recordingSink) SetColor(u shader.Uniform, c shader.RGBA) {
	s.events = append(s.events, event{"color", u})
	s.colors = append(s.colors, c)
}

func (s *recordingSink) SetFloat(u shader.Uniform, f float64) {
	s.events = append(s.events, event{"float", u})
	s.floats[u] = f
}

func (s *recordingSink) SetBool(u shader.Uniform, b bool) {
	s.events = append(s.events, event{"bool", u})
	s.bools[u] = b
}

func (s *recordingSink) SetSampler(u shader.Uniform, slot int) {
	s.events = append(s.events, event{"sampler", u})
	s.samplers = append(s.samplers, slot)
}

func (s *recordingSink) SetDirectionalLight(l shader.DirectionalLight) {
	s.events = append(s.events, event{kind: "dirlight"})
	s.dir = l
}

func (s *recordingSink) SetPointLight(index int, l shader.PointLight) {
	s.events = append(s.events, event{kind: "pointlight"})
	s.points[index] = l
}

// fakeDevice implements both the texture and mesh device surfaces.
type fakeDevice struct {
	nextTex  texture.Handle
	binds    map[int]texture.Handle
	deletes  map[texture.Handle]int
	nextMesh mesh.ID
	draws    []mesh.ID
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		binds:   make(map[int]texture.Handle),
		deletes: make(map[texture.Handle]int),
	}
}

func (d *fakeDevice) CreateTexture(img *image.NRGBA) (texture.Handle, error) {
	d.nextTex++
	return d.nextTex, nil
}

func (d *fakeDevice) BindTexture(slot int, h texture.Handle) { d.binds[slot] = h }
func (d *fakeDevice) DeleteTexture(h texture.Handle)         { d.deletes[h]++ }

func (d *fakeDevice) CreateMesh(mesh.Data) mesh.ID {
	d.nextMesh++
	return d.nextMesh
}

func (d *fakeDevice) DrawMesh(id mesh.ID) { d.draws = append(d.draws, id) }

func writeScenePNG(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 40, G: 120, B: 40, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// sceneTextureDir lays out the four files the scene expects.
func sceneTextureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"leaves3.png", "leaves.png", "log.png", "stone.png"} {
		writeScenePNG(t, dir, name)
	}
	return dir
}

// newTestManager returns a manager backed by a recording sink and fake
// device, fully prepared from a complete texture directory.
func newTestManager(t *testing.T) (*Manager, *recordingSink, *fakeDevice) {
	t.Helper()
	sink := newRecordingSink()
	dev := newFakeDevice()
	m := NewManager(sink, texture.NewRegistry(dev), mesh.NewShapes(dev))
	m.PrepareScene(texture.BuildIndex(sceneTextureDir(t)))
	return m, sink, dev
}

func TestPrepareScene(t *testing.T) {
	m, sink, dev := newTestManager(t)

	assert.Equal(t, 4, m.textures.Len(), "four scene textures registered")
	assert.Len(t, dev.binds, 4, "every texture bound to its slot")
	assert.Equal(t, mesh.ID(4), dev.nextMesh, "four primitive meshes uploaded")
	assert.Equal(t, 3, m.materials.Len())

	assert.True(t, sink.bools[shader.UUseLighting])
	assert.True(t, sink.dir.Active)
	assert.Equal(t, mathutil.Vec3{-4, -1, -1}, sink.dir.Direction)
	pl, ok := sink.points[1]
	require.True(t, ok, "fill light lives in point-light slot 1")
	assert.Equal(t, mathutil.Vec3{30, 20, -80}, pl.Position)
}

func TestPrepareSceneMissingTextures(t *testing.T) {
	sink := newRecordingSink()
	dev := newFakeDevice()
	m := NewManager(sink, texture.NewRegistry(dev), mesh.NewShapes(dev))

	m.PrepareScene(texture.BuildIndex(t.TempDir())) // must not panic, just degrade
	assert.Equal(t, 0, m.textures.Len())

	// Lookups now push the miss sentinel.
	m.SetShaderTexture("log")
	require.Len(t, sink.samplers, 1)
	assert.Equal(t, texture.NoSlot, sink.samplers[0])
}

func TestSetShaderTexture(t *testing.T) {
	m, sink, _ := newTestManager(t)

	m.SetShaderTexture("leaves")
	assert.True(t, sink.bools[shader.UUseTexture])
	require.Len(t, sink.samplers, 1)
	assert.Equal(t, 0, sink.samplers[0], "leaves registered first, slot 0")

	m.SetShaderTexture("stone")
	assert.Equal(t, 3, sink.samplers[1])
}

func TestSetShaderColor(t *testing.T) {
	m, sink, _ := newTestManager(t)

	m.SetShaderColor(0, 0.502, 0, 1)
	assert.False(t, sink.bools[shader.UUseTexture], "flat color disables texturing")
	require.NotEmpty(t, sink.colors)
	assert.Equal(t, shader.RGBA{R: 0, G: 0.502, B: 0, A: 1}, sink.colors[len(sink.colors)-1])
}

func TestSetShaderMaterial(t *testing.T) {
	m, sink, _ := newTestManager(t)

	m.SetShaderMaterial("wood")
	assert.Equal(t, mathutil.Vec3{0.2, 0.2, 0.3}, sink.vec3s[shader.UMaterialDiffuse])
	assert.Equal(t, mathutil.Vec3{0, 0, 0}, sink.vec3s[shader.UMaterialSpecular])
	assert.Equal(t, 0.1, sink.floats[shader.UMaterialShininess])

	// Unknown tag keeps the previous material.
	m.SetShaderMaterial("chrome")
	assert.Equal(t, 0.1, sink.floats[shader.UMaterialShininess])
}

func TestSetTransformations(t *testing.T) {
	m, sink, _ := newTestManager(t)

	scale := mathutil.Vec3{50, 50, 50}
	pos := mathutil.Vec3{-50, 25, -80}
	m.SetTransformations(scale, 0, 180, 0, pos)

	require.NotEmpty(t, sink.mat4s)
	want := mathutil.ComposeTransform(scale, 0, 180, 0, pos)
	assert.Equal(t, want, sink.mat4s[len(sink.mat4s)-1])
	assert.Equal(t, shader.UModel, sink.events[len(sink.events)-1].u)
}

func TestSetTextureUVScale(t *testing.T) {
	m, sink, _ := newTestManager(t)
	m.SetTextureUVScale(4, 4)
	last := sink.events[len(sink.events)-1]
	assert.Equal(t, "vec2", last.kind)
	assert.Equal(t, shader.UUVScale, last.u)
}

func TestRelease(t *testing.T) {
	m, _, dev := newTestManager(t)

	m.Release()
	assert.Len(t, dev.deletes, 4)
	for h, n := range dev.deletes {
		assert.Equal(t, 1, n, "handle %d deleted exactly once", h)
	}
	assert.Equal(t, 0, m.textures.Len())

	// Releasing again is a no-op.
	m.Release()
	for _, n := range dev.deletes {
		assert.Equal(t, 1, n)
	}
}
