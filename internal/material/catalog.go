// Package material holds the ordered catalog of surface material
// definitions the scene pushes into the shader before draw calls.
package material

import "landscape-renderer/internal/mathutil"

// Material describes the lighting response of a surface: diffuse and
// specular reflectivity as RGB factors, plus a Blinn-Phong shininess
// exponent.
type Material struct {
	Tag       string
	Diffuse   mathutil.Vec3
	Specular  mathutil.Vec3
	Shininess float64
}

// Catalog is an ordered list of materials looked up by tag. Populated once
// during scene preparation, read-only afterwards. Linear scan is deliberate:
// the catalog holds a handful of entries.
type Catalog struct {
	materials []Material
}

// Define appends a material description. There is no uniqueness check and
// no limit; a re-defined tag shadows nothing because Lookup returns the
// first match.
func (c *Catalog) Define(tag string, diffuse, specular mathutil.Vec3, shininess float64) {
	c.materials = append(c.materials, Material{
		Tag:       tag,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	})
}

// Lookup returns the first material defined under tag. The second result
// is false when the catalog is empty or no entry matches.
func (c *Catalog) Lookup(tag string) (Material, bool) {
	for _, m := range c.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials.
func (c *Catalog) Len() int {
	return len(c.materials)
}
