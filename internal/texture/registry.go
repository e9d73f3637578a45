package texture

import (
	"fmt"
	"image"
)

// Handle identifies a device texture object. NoTexture is the lookup-miss
// sentinel; callers must treat it as "no texture", never as a valid handle.
type Handle int

// NoTexture (and NoSlot) are returned by lookups on an unknown tag.
const (
	NoTexture Handle = -1
	NoSlot    int    = -1
)

// MaxSlots is the number of sampler slots the scene shader exposes.
const MaxSlots = 16

// Device is the graphics-context surface the registry drives. CreateTexture
// uploads pixels with repeat wrapping, bilinear filtering and generated
// mipmaps; BindTexture attaches a texture to a sampler slot; DeleteTexture
// frees the object.
type Device interface {
	CreateTexture(img *image.NRGBA) (Handle, error)
	BindTexture(slot int, h Handle)
	DeleteTexture(h Handle)
}

// Entry records one registered texture. Slot equals registration order.
type Entry struct {
	Tag    string
	Handle Handle
	Slot   int
}

// Registry assigns registered textures consecutive sampler slots and maps
// human-readable tags to them. Populated once during scene preparation,
// read-only afterwards. Not safe for concurrent use; the render path is
// single-threaded.
type Registry struct {
	dev     Device
	cache   *Cache
	entries []Entry
}

// NewRegistry returns an empty registry backed by dev.
func NewRegistry(dev Device) *Registry {
	return &Registry{dev: dev, cache: NewCache()}
}

// Register decodes the image file at path, uploads it to the device and
// records it under tag in the next free slot. Registering a tag twice is
// allowed; lookups return the first registration (shadowing).
func (r *Registry) Register(path, tag string) error {
	if len(r.entries) >= MaxSlots {
		return fmt.Errorf("texture: register %q: all %d sampler slots in use", tag, MaxSlots)
	}

	img, err := r.cache.Decode(path)
	if err != nil {
		return fmt.Errorf("texture: register %q: %w", tag, err)
	}

	h, err := r.dev.CreateTexture(img)
	if err != nil {
		return fmt.Errorf("texture: register %q: upload: %w", tag, err)
	}

	r.entries = append(r.entries, Entry{Tag: tag, Handle: h, Slot: len(r.entries)})
	return nil
}

// BindAll binds every registered texture to its slot, in registration
// order. Call once after all Register calls and before any draw that
// references textures by slot.
func (r *Registry) BindAll() {
	for _, e := range r.entries {
		r.dev.BindTexture(e.Slot, e.Handle)
	}
}

// LookupHandle returns the device handle registered under tag, or
// NoTexture. First match wins.
func (r *Registry) LookupHandle(tag string) Handle {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Handle
		}
	}
	return NoTexture
}

// LookupSlot returns the sampler slot registered under tag, or NoSlot.
// First match wins.
func (r *Registry) LookupSlot(tag string) int {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Slot
		}
	}
	return NoSlot
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ReleaseAll deletes every device texture exactly once and empties the
// registry.
func (r *Registry) ReleaseAll() {
	for _, e := range r.entries {
		r.dev.DeleteTexture(e.Handle)
	}
	r.entries = nil
}
