package mathutil

// ComposeTransform builds the model matrix for a scene object from a
// per-axis scale, per-axis rotation angles in degrees, and a world-space
// translation. The composition order is fixed:
//
//	translation × rotZ × rotY × rotX × scale
//
// applied to column vectors — scale first, then rotate about the object's
// local X, Y and Z axes in that order, then translate into world space.
// Scene placement depends on this exact order; do not reorder.
func ComposeTransform(scale Vec3, rotXDeg, rotYDeg, rotZDeg float64, translate Vec3) Mat4 {
	rot := Mat3Mul(Mat3Mul(RotZ(Deg2Rad(rotZDeg)), RotY(Deg2Rad(rotYDeg))), RotX(Deg2Rad(rotXDeg)))
	linear := Mat3Mul(rot, Mat3Diag(scale[0], scale[1], scale[2]))
	return FromMat3Translation(linear, translate)
}
