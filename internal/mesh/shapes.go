package mesh

import (
	"math"

	"landscape-renderer/internal/mathutil"
)

// Plane returns a 2×2 quad in the XZ plane centered on the origin with a
// +Y normal. UVs span the full [0,1] range so UV tiling scales cleanly.
func Plane() Data {
	return Data{
		Positions: []mathutil.Vec3{
			{-1, 0, -1},
			{1, 0, -1},
			{1, 0, 1},
			{-1, 0, 1},
		},
		Normals: []mathutil.Vec3{
			{0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0},
		},
		UVs: [][2]float64{
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
		},
		Indices: []int{0, 2, 1, 0, 3, 2},
	}
}

// Cylinder returns a capped cylinder of radius 1 and height 1 with its
// base on the XZ plane, extending along +Y. segments is the number of
// radial subdivisions.
func Cylinder(segments int) Data {
	var d Data

	// Side ring vertices: two rings sharing outward normals.
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		c, s := math.Cos(a), math.Sin(a)
		n := mathutil.Vec3{c, 0, s}
		u := float64(i) / float64(segments)

		d.Positions = append(d.Positions, mathutil.Vec3{c, 0, s}, mathutil.Vec3{c, 1, s})
		d.Normals = append(d.Normals, n, n)
		d.UVs = append(d.UVs, [2]float64{u, 0}, [2]float64{u, 1})
	}
	for i := 0; i < segments; i++ {
		b0 := i * 2
		d.Indices = append(d.Indices,
			b0, b0+1, b0+2,
			b0+2, b0+1, b0+3,
		)
	}

	// Caps: center vertex + rim ring each, with axial normals.
	addCap := func(y float64, n mathutil.Vec3, flip bool) {
		center := len(d.Positions)
		d.Positions = append(d.Positions, mathutil.Vec3{0, y, 0})
		d.Normals = append(d.Normals, n)
		d.UVs = append(d.UVs, [2]float64{0.5, 0.5})
		for i := 0; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			c, s := math.Cos(a), math.Sin(a)
			d.Positions = append(d.Positions, mathutil.Vec3{c, y, s})
			d.Normals = append(d.Normals, n)
			d.UVs = append(d.UVs, [2]float64{0.5 + c/2, 0.5 + s/2})
		}
		for i := 0; i < segments; i++ {
			a, b := center+1+i, center+2+i
			if flip {
				a, b = b, a
			}
			d.Indices = append(d.Indices, center, a, b)
		}
	}
	addCap(1, mathutil.Vec3{0, 1, 0}, false)
	addCap(0, mathutil.Vec3{0, -1, 0}, true)

	return d
}

// Sphere returns a unit-radius UV sphere centered on the origin.
func Sphere(stacks, slices int) Data {
	var d Data

	for st := 0; st <= stacks; st++ {
		phi := math.Pi * float64(st) / float64(stacks)
		y := math.Cos(phi)
		r := math.Sin(phi)
		for sl := 0; sl <= slices; sl++ {
			theta := 2 * math.Pi * float64(sl) / float64(slices)
			p := mathutil.Vec3{r * math.Cos(theta), y, r * math.Sin(theta)}
			d.Positions = append(d.Positions, p)
			d.Normals = append(d.Normals, p) // unit sphere: normal == position
			d.UVs = append(d.UVs, [2]float64{
				float64(sl) / float64(slices),
				float64(st) / float64(stacks),
			})
		}
	}

	ring := slices + 1
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			i0 := st*ring + sl
			i1 := i0 + ring
			d.Indices = append(d.Indices,
				i0, i1, i0+1,
				i0+1, i1, i1+1,
			)
		}
	}

	return d
}

// Pyramid3 returns a three-sided pyramid: an equilateral triangular base
// inscribed in radius 0.5 at y=-0.5 and an apex at (0, 0.5, 0). Faces are
// flat-shaded, so vertices are duplicated per face.
func Pyramid3() Data {
	apex := mathutil.Vec3{0, 0.5, 0}
	var base [3]mathutil.Vec3
	for i := 0; i < 3; i++ {
		a := 2*math.Pi*float64(i)/3 - math.Pi/2
		base[i] = mathutil.Vec3{0.5 * math.Cos(a), -0.5, 0.5 * math.Sin(a)}
	}

	var d Data
	addFace := func(a, b, c mathutil.Vec3) {
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		i := len(d.Positions)
		d.Positions = append(d.Positions, a, b, c)
		d.Normals = append(d.Normals, n, n, n)
		d.UVs = append(d.UVs, [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0.5, 1})
		d.Indices = append(d.Indices, i, i+1, i+2)
	}

	// Three sides, apex last so the UV peak sits at the tip.
	addFace(base[0], base[1], apex)
	addFace(base[1], base[2], apex)
	addFace(base[2], base[0], apex)
	// Base, facing down.
	addFace(base[0], base[2], base[1])

	return d
}
