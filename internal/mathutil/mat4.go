package mathutil

import "math"

// Mat4 is a 4×4 matrix stored row-major, applied to column vectors.
// Used for model, view and projection transforms.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Scale returns a matrix scaling each axis independently.
func Mat4Scale(s Vec3) Mat4 {
	return Mat4{
		s[0], 0, 0, 0,
		0, s[1], 0, 0,
		0, 0, s[2], 0,
		0, 0, 0, 1,
	}
}

// Mat4Translate returns a matrix translating by t.
func Mat4Translate(t Vec3) Mat4 {
	return Mat4{
		1, 0, 0, t[0],
		0, 1, 0, t[1],
		0, 0, 1, t[2],
		0, 0, 0, 1,
	}
}

// Mat4RotX returns a rotation about the X axis. Angle in radians.
func Mat4RotX(a float64) Mat4 {
	return FromMat3Translation(RotX(a), Vec3{})
}

// Mat4RotY returns a rotation about the Y axis.
func Mat4RotY(a float64) Mat4 {
	return FromMat3Translation(RotY(a), Vec3{})
}

// Mat4RotZ returns a rotation about the Z axis.
func Mat4RotZ(a float64) Mat4 {
	return FromMat3Translation(RotZ(a), Vec3{})
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulPoint transforms a 3D point (w=1) by the matrix, dropping w.
// Valid for affine matrices; use TransformPoint when a perspective
// divide is needed.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// MulDir transforms a direction (w=0), ignoring translation.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2],
	}
}

// TransformPoint transforms a point (w=1) and returns the homogeneous
// result before the perspective divide.
func (m Mat4) TransformPoint(v Vec3) (Vec3, float64) {
	out := Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
	w := m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]
	return out, w
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 linear part
// and a translation.
func FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// Upper3x3 returns the linear (rotation/scale) part of an affine matrix.
func (m Mat4) Upper3x3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// NormalMatrix returns the inverse-transpose of the linear part, used to
// transform surface normals under non-uniform scale.
func (m Mat4) NormalMatrix() Mat3 {
	return m.Upper3x3().Inverse().Transpose()
}

// Perspective returns an OpenGL-style perspective projection.
// fovy is the vertical field of view in degrees.
func Perspective(fovyDeg, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(Deg2Rad(fovyDeg)/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}
}

// LookAt returns a right-handed view matrix with the camera at eye,
// looking toward center.
func LookAt(eye, center, up Vec3) Mat4 {
	fwd := center.Sub(eye).Normalize()
	right := fwd.Cross(up).Normalize()
	upOrtho := right.Cross(fwd)

	rot := Mat3{
		right[0], right[1], right[2],
		upOrtho[0], upOrtho[1], upOrtho[2],
		-fwd[0], -fwd[1], -fwd[2],
	}
	t := rot.MulVec3(eye).Scale(-1)
	return FromMat3Translation(rot, t)
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}
