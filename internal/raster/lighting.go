package raster

import (
	"math"

	"landscape-renderer/internal/mathutil"
	"landscape-renderer/internal/shader"
)

// surfaceMaterial is the material slice of the uniform block, read by the
// shading step.
type surfaceMaterial struct {
	Diffuse   mathutil.Vec3
	Specular  mathutil.Vec3
	Shininess float64
}

// shadeFace evaluates flat Blinn-Phong lighting for one face. normal and
// point are in world space; viewPos is the camera position. It returns a
// multiplicative term applied to the surface base color (texture sample or
// flat color) and an additive specular term:
//
//	rgb = base ⊙ mul + add
//
// Each active light contributes ambient + diffuse·(N·L)·material.Diffuse
// to mul and specular·(N·H)^shininess·material.Specular to add.
func shadeFace(
	normal, point, viewPos mathutil.Vec3,
	dir shader.DirectionalLight,
	points []shader.PointLight,
	mat surfaceMaterial,
) (mul, add mathutil.Vec3) {
	viewDir := viewPos.Sub(point).Normalize()

	accumulate := func(lightDir, ambient, diffuse, specular mathutil.Vec3) {
		ndl := normal.Dot(lightDir)
		if ndl < 0 {
			ndl = 0
		}
		half := lightDir.Add(viewDir).Normalize()
		ndh := normal.Dot(half)
		if ndh < 0 {
			ndh = 0
		}
		spec := math.Pow(ndh, mat.Shininess)

		for k := 0; k < 3; k++ {
			mul[k] += ambient[k] + diffuse[k]*ndl*mat.Diffuse[k]
			add[k] += specular[k] * spec * mat.Specular[k]
		}
	}

	if dir.Active {
		// Light direction points from the light toward the scene.
		accumulate(dir.Direction.Scale(-1).Normalize(), dir.Ambient, dir.Diffuse, dir.Specular)
	}
	for _, pl := range points {
		if !pl.Active {
			continue
		}
		accumulate(pl.Position.Sub(point).Normalize(), pl.Ambient, pl.Diffuse, pl.Specular)
	}

	return mul, add
}
