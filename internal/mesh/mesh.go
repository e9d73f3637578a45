// Package mesh provides the procedural primitive shapes the landscape
// scene is assembled from, and the one-time upload / per-draw surface the
// scene manager calls into.
package mesh

import (
	"log"

	"landscape-renderer/internal/mathutil"
)

// Data is the vertex data for one mesh: positions, per-vertex normals and
// UVs, plus a triangle index list (three indices per face).
type Data struct {
	Positions []mathutil.Vec3
	Normals   []mathutil.Vec3
	UVs       [][2]float64
	Indices   []int
}

// ID identifies an uploaded device mesh. The zero value is "not loaded".
type ID int

// Device is the buffer-upload and draw surface the shapes drive. DrawMesh
// rasterizes the mesh with the transform and shading state currently set
// on the device.
type Device interface {
	CreateMesh(d Data) ID
	DrawMesh(id ID)
}

// Shapes holds one device mesh per primitive shape. Each Load method
// uploads the shape once, no matter how many times it is drawn; each Draw
// method issues one device draw call. Drawing a shape that was never
// loaded is a logged no-op.
type Shapes struct {
	dev      Device
	plane    ID
	cylinder ID
	sphere   ID
	pyramid3 ID
}

// NewShapes returns a Shapes with nothing loaded.
func NewShapes(dev Device) *Shapes {
	return &Shapes{dev: dev}
}

func (s *Shapes) LoadPlane() {
	if s.plane == 0 {
		s.plane = s.dev.CreateMesh(Plane())
	}
}

func (s *Shapes) LoadCylinder() {
	if s.cylinder == 0 {
		s.cylinder = s.dev.CreateMesh(Cylinder(24))
	}
}

func (s *Shapes) LoadSphere() {
	if s.sphere == 0 {
		s.sphere = s.dev.CreateMesh(Sphere(16, 24))
	}
}

func (s *Shapes) LoadPyramid3() {
	if s.pyramid3 == 0 {
		s.pyramid3 = s.dev.CreateMesh(Pyramid3())
	}
}

func (s *Shapes) DrawPlane() { s.draw(s.plane, "plane") }

func (s *Shapes) DrawCylinder() { s.draw(s.cylinder, "cylinder") }

func (s *Shapes) DrawSphere() { s.draw(s.sphere, "sphere") }

func (s *Shapes) DrawPyramid3() { s.draw(s.pyramid3, "pyramid3") }

func (s *Shapes) draw(id ID, name string) {
	if id == 0 {
		log.Printf("mesh: draw %s: mesh not loaded, skipping", name)
		return
	}
	s.dev.DrawMesh(id)
}
