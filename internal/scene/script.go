package scene

import "landscape-renderer/internal/mathutil"

// RenderScene draws the whole landscape: ground and sky planes, the tree
// line, the mountain ridge, then clouds. Placements are hand-authored
// literals; there is no culling and no scene graph.
func (m *Manager) RenderScene() {
	m.drawGroundAndSky(0, 0, -100)

	m.drawPyramidTree(-5, 0, -30)
	m.drawPyramidTree(5, 0, -10)

	m.drawSphericalTree(-45, 0, -15)
	m.drawSphericalTree(-40, 0, -35)

	m.drawPyramidTree(45, 0, -10)
	m.drawSphericalTree(50, 0, -35)

	m.drawMountain(-50, 25, -80, 50)
	m.drawMountain(-30, 15, -120, 30)

	m.drawMountain(40, 10, -80, 20)
	m.drawMountain(55, 24, -120, 48)
	m.drawMountain(70, 10, -80, 20)

	m.drawCloud(10, 100, -80, 2)
	m.drawCloud(-50, 85, -90, 2)
	m.drawCloud(50, 50, -70, 2)
}

// drawGroundAndSky draws the green ground plane and the upright sky
// backdrop behind it.
func (m *Manager) drawGroundAndSky(posx, posy, posz float64) {
	m.SetTransformations(
		mathutil.Vec3{200, 1, 200},
		0, 0, 0,
		mathutil.Vec3{posx, posy, posz})
	m.SetShaderColor(0, 0.502, 0, 1)
	m.SetShaderMaterial("greenery")
	m.shapes.DrawPlane()

	// Sky: a plane rotated upright, well behind the ground.
	m.SetTransformations(
		mathutil.Vec3{300, 1, 300},
		90, 0, 0,
		mathutil.Vec3{posx, 15 + posy, -50 + posz})
	m.SetShaderColor(0.416, 0.835, 0.851, 1)
	m.SetShaderMaterial("sky")
	m.shapes.DrawPlane()
}

// drawSphericalTree draws a log trunk topped by two leaf spheres.
func (m *Manager) drawSphericalTree(posx, posy, posz float64) {
	// Trunk
	m.SetTransformations(
		mathutil.Vec3{1, 8, 1},
		0, 0, 0,
		mathutil.Vec3{posx, posy, posz})
	m.SetShaderColor(0.235, 0.702, 0.443, 1)
	m.SetShaderTexture("log")
	m.SetShaderMaterial("wood")
	m.shapes.DrawCylinder()

	// Inner canopy sphere, untextured
	m.SetTransformations(
		mathutil.Vec3{2, 2, 2},
		0, 0, 0,
		mathutil.Vec3{posx, 8 + posy, posz})
	m.SetShaderColor(0.235, 0.702, 0.443, 1)
	m.SetShaderMaterial("greenery")
	m.shapes.DrawSphere()

	// Outer leaf sphere
	m.SetTransformations(
		mathutil.Vec3{4, 4, 4},
		0, 0, 0,
		mathutil.Vec3{posx, 10 + posy, posz})
	m.SetShaderColor(0.065, 0.532, 0.273, 1)
	m.SetShaderMaterial("greenery")
	m.SetShaderTexture("leaves")
	m.shapes.DrawSphere()
}

// drawPyramidTree draws a log trunk with three stacked pyramid canopies,
// pine style. The whole tree sits 12 units right of the given position.
func (m *Manager) drawPyramidTree(posx, posy, posz float64) {
	// Trunk
	m.SetTransformations(
		mathutil.Vec3{1, 8, 1},
		0, 0, 0,
		mathutil.Vec3{12 + posx, posy, posz})
	m.SetShaderColor(0.235, 0.702, 0.443, 1)
	m.SetShaderTexture("log")
	m.SetShaderMaterial("wood")
	m.shapes.DrawCylinder()

	// Canopy tiers, largest to smallest
	for _, tier := range []struct {
		scale float64
		y     float64
	}{
		{9, 10.5},
		{7, 15},
		{5, 19},
	} {
		m.SetTransformations(
			mathutil.Vec3{tier.scale, tier.scale, tier.scale},
			0, 0, 0,
			mathutil.Vec3{12 + posx, tier.y + posy, -0.5 + posz})
		m.SetShaderColor(0.065, 0.532, 0.273, 1)
		m.SetShaderTexture("pineleaves")
		m.SetShaderMaterial("greenery")
		m.shapes.DrawPyramid3()
	}
}

// drawMountain draws one stone pyramid, rotated to vary the silhouette.
func (m *Manager) drawMountain(posx, posy, posz, scale float64) {
	m.SetTransformations(
		mathutil.Vec3{scale, scale, scale},
		0, 180, 0,
		mathutil.Vec3{posx, posy, posz})
	m.SetShaderColor(0.5, 0.5, 0.5, 1)
	m.SetShaderTexture("stone")
	m.SetShaderMaterial("wood")
	m.shapes.DrawPyramid3()
}

// drawCloud draws a cluster of six overlapping untextured spheres.
func (m *Manager) drawCloud(posx, posy, posz, scale float64) {
	for _, puff := range []struct {
		sx, sy, sz float64 // scale multipliers
		ox, oy, oz float64 // position offsets
		rotX       float64
	}{
		{1.5, 1.0, 1.5, 0, 1.5, 0, 0},
		{3, 2, 3, -3.5, 0, 0.5, 0},
		{3, 2, 3, 3.25, 0, -0.5, 0},
		{4, 3, 4, 0.5, -1, 2, 0},
		{3, 2, 3, -5, -0.5, 1, 0},
		{4, 2, 4, 5.5, 0, -1.25, 15},
	} {
		m.SetTransformations(
			mathutil.Vec3{puff.sx * scale, puff.sy * scale, puff.sz * scale},
			puff.rotX, 0, 0,
			mathutil.Vec3{puff.ox + posx, puff.oy + posy, puff.oz + posz})
		m.SetShaderColor(0.9, 0.9, 0.9, 1)
		m.SetShaderMaterial("wood")
		m.shapes.DrawSphere()
	}
}
