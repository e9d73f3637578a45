// Package raster is a single-threaded software implementation of the
// graphics context the scene renders through: texture objects with mipmap
// pyramids, sampler slots, a typed uniform block, mesh buffers and a
// z-buffered flat-shaded triangle rasterizer.
package raster

import (
	"fmt"
	"image"
	"log"
	"math"

	xdraw "golang.org/x/image/draw"

	"landscape-renderer/internal/mathutil"
	"landscape-renderer/internal/mesh"
	"landscape-renderer/internal/shader"
	"landscape-renderer/internal/texture"
)

// minClipW rejects faces touching or behind the camera plane. Clipping is
// not implemented; the fixed scene keeps all geometry well in front.
const minClipW = 1e-3

// textureObject is a device texture: the uploaded image plus a mipmap
// pyramid halved down to 1×1.
type textureObject struct {
	levels []*image.NRGBA
}

// uniformBlock is the active shader-parameter state. Writes through the
// ParamSink surface land here and take effect on the next draw call.
type uniformBlock struct {
	Model        mathutil.Mat4
	View         mathutil.Mat4
	Projection   mathutil.Mat4
	ViewPosition mathutil.Vec3
	ObjectColor  shader.RGBA
	UseTexture   bool
	UseLighting  bool
	TextureSlot  int
	UVScaleU     float64
	UVScaleV     float64
	Material     surfaceMaterial
	DirLight     shader.DirectionalLight
	PointLights  [shader.MaxPointLights]shader.PointLight
}

// Device implements shader.ParamSink, texture.Device and mesh.Device over
// a software framebuffer. It is driven by a single rendering goroutine and
// carries no locking.
type Device struct {
	fb        *FrameBuffer
	textures  map[texture.Handle]*textureObject
	nextTex   texture.Handle
	units     [texture.MaxSlots]texture.Handle
	meshes    map[mesh.ID]mesh.Data
	nextMesh  mesh.ID
	u         uniformBlock
	drawCalls int
}

// NewDevice returns a device rendering into a w×h framebuffer.
func NewDevice(w, h int) *Device {
	return &Device{
		fb:       NewFrameBuffer(w, h),
		textures: make(map[texture.Handle]*textureObject),
		nextTex:  1,
		meshes:   make(map[mesh.ID]mesh.Data),
		nextMesh: 1,
		u: uniformBlock{
			Model:       mathutil.Mat4Identity(),
			View:        mathutil.Mat4Identity(),
			Projection:  mathutil.Mat4Identity(),
			ObjectColor: shader.RGBA{R: 1, G: 1, B: 1, A: 1},
			TextureSlot: texture.NoSlot,
			UVScaleU:    1,
			UVScaleV:    1,
			Material: surfaceMaterial{
				Diffuse:   mathutil.Vec3{1, 1, 1},
				Shininess: 1,
			},
		},
	}
}

// Clear fills the framebuffer with a background color and resets depth.
func (d *Device) Clear(r, g, b, a float64) {
	d.fb.Clear(r, g, b, a)
}

// Image returns a copy of the current framebuffer contents.
func (d *Device) Image() *image.NRGBA {
	return d.fb.Image()
}

// DrawCallCount returns the number of draw calls issued since creation.
func (d *Device) DrawCallCount() int {
	return d.drawCalls
}

// CreateTexture uploads pixels as a device texture with repeat wrapping,
// bilinear filtering and a generated mipmap pyramid.
func (d *Device) CreateTexture(img *image.NRGBA) (texture.Handle, error) {
	if img == nil || img.Rect.Dx() == 0 || img.Rect.Dy() == 0 {
		return texture.NoTexture, fmt.Errorf("raster: create texture: empty image")
	}
	h := d.nextTex
	d.nextTex++
	d.textures[h] = &textureObject{levels: buildMipmaps(img)}
	return h, nil
}

// BindTexture attaches a texture object to a sampler slot.
func (d *Device) BindTexture(slot int, h texture.Handle) {
	if slot < 0 || slot >= texture.MaxSlots {
		log.Printf("raster: bind texture: slot %d out of range", slot)
		return
	}
	if _, ok := d.textures[h]; !ok {
		log.Printf("raster: bind texture: unknown handle %d", h)
		return
	}
	d.units[slot] = h
}

// DeleteTexture frees a texture object. Bound slots referencing it go
// back to empty.
func (d *Device) DeleteTexture(h texture.Handle) {
	if _, ok := d.textures[h]; !ok {
		log.Printf("raster: delete texture: unknown handle %d", h)
		return
	}
	delete(d.textures, h)
	for i, bound := range d.units {
		if bound == h {
			d.units[i] = 0
		}
	}
}

// TextureCount returns the number of live texture objects.
func (d *Device) TextureCount() int {
	return len(d.textures)
}

// CreateMesh uploads mesh data into the device's buffer store.
func (d *Device) CreateMesh(data mesh.Data) mesh.ID {
	id := d.nextMesh
	d.nextMesh++
	d.meshes[id] = data
	return id
}

// boundTexture resolves the texture object on a sampler slot, or nil.
func (d *Device) boundTexture(slot int) *textureObject {
	if slot < 0 || slot >= texture.MaxSlots {
		return nil
	}
	h := d.units[slot]
	if h == 0 {
		return nil
	}
	return d.textures[h]
}

// DrawMesh rasterizes a mesh with the current uniform block: model/view/
// projection transform, flat Blinn-Phong shading per face, z-buffered
// textured or flat-colored fill.
func (d *Device) DrawMesh(id mesh.ID) {
	m, ok := d.meshes[id]
	if !ok {
		log.Printf("raster: draw: unknown mesh %d", id)
		return
	}
	d.drawCalls++

	vp := mathutil.Mat4Mul(d.u.Projection, d.u.View)
	normalMat := d.u.Model.NormalMatrix()

	nv := len(m.Positions)
	world := make([]mathutil.Vec3, nv)
	sx := make([]float64, nv)
	sy := make([]float64, nv)
	depth := make([]float64, nv)
	clipW := make([]float64, nv)

	fw, fh := float64(d.fb.Width), float64(d.fb.Height)
	for i, p := range m.Positions {
		wp := d.u.Model.MulPoint(p)
		world[i] = wp
		clip, w := vp.TransformPoint(wp)
		clipW[i] = w
		if w > minClipW {
			inv := 1.0 / w
			sx[i] = (clip[0]*inv + 1) / 2 * fw
			sy[i] = (1 - clip[1]*inv) / 2 * fh
			depth[i] = inv // 1/w: larger means closer
		}
	}

	var tex *textureObject
	if d.u.UseTexture {
		tex = d.boundTexture(d.u.TextureSlot)
	}

	for f := 0; f+2 < len(m.Indices); f += 3 {
		i0, i1, i2 := m.Indices[f], m.Indices[f+1], m.Indices[f+2]
		if i0 >= nv || i1 >= nv || i2 >= nv {
			continue
		}
		if clipW[i0] <= minClipW || clipW[i1] <= minClipW || clipW[i2] <= minClipW {
			continue
		}

		mul := mathutil.Vec3{1, 1, 1}
		var add mathutil.Vec3
		if d.u.UseLighting {
			n := normalMat.MulVec3(m.Normals[i0].Add(m.Normals[i1]).Add(m.Normals[i2])).Normalize()
			centroid := world[i0].Add(world[i1]).Add(world[i2]).Scale(1.0 / 3)
			mul, add = shadeFace(n, centroid, d.u.ViewPosition, d.u.DirLight, d.u.PointLights[:], d.u.Material)
		}

		uv := [3][2]float64{
			{m.UVs[i0][0] * d.u.UVScaleU, m.UVs[i0][1] * d.u.UVScaleV},
			{m.UVs[i1][0] * d.u.UVScaleU, m.UVs[i1][1] * d.u.UVScaleV},
			{m.UVs[i2][0] * d.u.UVScaleU, m.UVs[i2][1] * d.u.UVScaleV},
		}

		var level *image.NRGBA
		if tex != nil {
			level = selectMipLevel(tex.levels, faceTexelArea(tex.levels[0], uv), faceScreenArea(
				sx[i0], sy[i0], sx[i1], sy[i1], sx[i2], sy[i2]))
		}

		rasterizeTriangle(d.fb,
			[3]float64{sx[i0], sx[i1], sx[i2]},
			[3]float64{sy[i0], sy[i1], sy[i2]},
			[3]float64{depth[i0], depth[i1], depth[i2]},
			uv, level, d.u.ObjectColor, mul, add)
	}
}

// faceScreenArea returns the pixel area of a screen-space triangle.
func faceScreenArea(x0, y0, x1, y1, x2, y2 float64) float64 {
	return math.Abs((x1-x0)*(y2-y0)-(x2-x0)*(y1-y0)) / 2
}

// faceTexelArea returns the level-0 texel area covered by a UV triangle.
func faceTexelArea(level0 *image.NRGBA, uv [3][2]float64) float64 {
	du1, dv1 := uv[1][0]-uv[0][0], uv[1][1]-uv[0][1]
	du2, dv2 := uv[2][0]-uv[0][0], uv[2][1]-uv[0][1]
	areaUV := math.Abs(du1*dv2-du2*dv1) / 2
	return areaUV * float64(level0.Rect.Dx()) * float64(level0.Rect.Dy())
}

// buildMipmaps builds a pyramid from img down to 1×1, halving each level
// with CatmullRom filtering.
func buildMipmaps(img *image.NRGBA) []*image.NRGBA {
	levels := []*image.NRGBA{img}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for w > 1 || h > 1 {
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
		src := levels[len(levels)-1]
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		levels = append(levels, dst)
	}
	return levels
}

// SetMat4 implements shader.ParamSink.
func (d *Device) SetMat4(u shader.Uniform, m mathutil.Mat4) {
	switch u {
	case shader.UModel:
		d.u.Model = m
	case shader.UView:
		d.u.View = m
	case shader.UProjection:
		d.u.Projection = m
	default:
		log.Printf("raster: SetMat4: unexpected uniform %s", u)
	}
}

// SetVec2 implements shader.ParamSink.
func (d *Device) SetVec2(u shader.Uniform, x, y float64) {
	switch u {
	case shader.UUVScale:
		d.u.UVScaleU = x
		d.u.UVScaleV = y
	default:
		log.Printf("raster: SetVec2: unexpected uniform %s", u)
	}
}

// SetVec3 implements shader.ParamSink.
func (d *Device) SetVec3(u shader.Uniform, v mathutil.Vec3) {
	switch u {
	case shader.UViewPosition:
		d.u.ViewPosition = v
	case shader.UMaterialDiffuse:
		d.u.Material.Diffuse = v
	case shader.UMaterialSpecular:
		d.u.Material.Specular = v
	default:
		log.Printf("raster: SetVec3: unexpected uniform %s", u)
	}
}

// SetColor implements shader.ParamSink.
func (d *Device) SetColor(u shader.Uniform, c shader.RGBA) {
	switch u {
	case shader.UObjectColor:
		d.u.ObjectColor = c
	default:
		log.Printf("raster: SetColor: unexpected uniform %s", u)
	}
}

// SetFloat implements shader.ParamSink.
func (d *Device) SetFloat(u shader.Uniform, f float64) {
	switch u {
	case shader.UMaterialShininess:
		d.u.Material.Shininess = f
	default:
		log.Printf("raster: SetFloat: unexpected uniform %s", u)
	}
}

// SetBool implements shader.ParamSink.
func (d *Device) SetBool(u shader.Uniform, b bool) {
	switch u {
	case shader.UUseTexture:
		d.u.UseTexture = b
	case shader.UUseLighting:
		d.u.UseLighting = b
	default:
		log.Printf("raster: SetBool: unexpected uniform %s", u)
	}
}

// SetSampler implements shader.ParamSink. A negative slot is the "no
// texture" sentinel; the draw falls back to the flat object color.
func (d *Device) SetSampler(u shader.Uniform, slot int) {
	switch u {
	case shader.UObjectTexture:
		d.u.TextureSlot = slot
	default:
		log.Printf("raster: SetSampler: unexpected uniform %s", u)
	}
}

// SetDirectionalLight implements shader.ParamSink.
func (d *Device) SetDirectionalLight(l shader.DirectionalLight) {
	d.u.DirLight = l
}

// SetPointLight implements shader.ParamSink.
func (d *Device) SetPointLight(index int, l shader.PointLight) {
	if index < 0 || index >= shader.MaxPointLights {
		log.Printf("raster: SetPointLight: index %d out of range", index)
		return
	}
	d.u.PointLights[index] = l
}
