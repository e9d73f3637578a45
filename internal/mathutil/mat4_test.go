package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4Translate(Vec3{1, 2, 3})
	assert.Equal(t, m, Mat4Mul(Mat4Identity(), m))
	assert.Equal(t, m, Mat4Mul(m, Mat4Identity()))
}

func TestMat4RotationsMatchMat3(t *testing.T) {
	v := Vec3{0.3, -0.7, 1.1}
	a := 0.42
	assertVec3(t, RotX(a).MulVec3(v), Mat4RotX(a).MulPoint(v))
	assertVec3(t, RotY(a).MulVec3(v), Mat4RotY(a).MulPoint(v))
	assertVec3(t, RotZ(a).MulVec3(v), Mat4RotZ(a).MulPoint(v))
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	view := LookAt(Vec3{3, 4, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	assertVec3(t, Vec3{0, 0, 0}, view.MulPoint(Vec3{3, 4, 5}))
}

func TestLookAtForwardIsNegativeZ(t *testing.T) {
	// A point straight ahead of the camera lands on the -Z axis in view
	// space.
	view := LookAt(Vec3{0, 0, 10}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	assertVec3(t, Vec3{0, 0, -10}, view.MulPoint(Vec3{0, 0, 0}))
}

func TestPerspectiveCenterAndW(t *testing.T) {
	proj := Perspective(90, 1, 1, 100)

	// A centered point stays centered, and w carries the view-space
	// distance.
	clip, w := proj.TransformPoint(Vec3{0, 0, -10})
	assert.InDelta(t, 0, clip[0], eps)
	assert.InDelta(t, 0, clip[1], eps)
	assert.InDelta(t, 10, w, eps)

	// The near and far planes map to NDC z = -1 and +1.
	clip, w = proj.TransformPoint(Vec3{0, 0, -1})
	require.Positive(t, w)
	assert.InDelta(t, -1, clip[2]/w, eps)
	clip, w = proj.TransformPoint(Vec3{0, 0, -100})
	assert.InDelta(t, 1, clip[2]/w, eps)
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	// Under a non-uniform scale the normal transforms by the
	// inverse-transpose: a +X normal on a (2,1,1)-scaled surface shrinks
	// along X.
	m := Mat4Scale(Vec3{2, 1, 1})
	n := m.NormalMatrix().MulVec3(Vec3{1, 0, 0})
	assertVec3(t, Vec3{0.5, 0, 0}, n)

	// For a pure rotation the normal matrix is the rotation itself.
	r := Mat4RotY(0.7)
	got := r.NormalMatrix().MulVec3(Vec3{0, 0, 1})
	assertVec3(t, RotY(0.7).MulVec3(Vec3{0, 0, 1}), got)
}
