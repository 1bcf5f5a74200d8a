// SPDX-License-Identifier: Unlicense OR MIT

package texture

import (
	"github.com/jzq/glw/format"
	"github.com/jzq/glw/gl"
)

// Texture1D is a handle to a gl.TEXTURE_1D texture.
type Texture1D struct {
	handle
}

var _ Texture = (*Texture1D)(nil)

// New1D returns an unallocated handle.
func New1D(f gl.Functions) *Texture1D {
	return &Texture1D{handle: newHandle(f, gl.TEXTURE_1D)}
}

// NewTexture1D allocates a texture and specifies level 0 in the storage
// format with the given width.
func NewTexture1D(f gl.Functions, storage format.Format, width int, opts ...Option) (*Texture1D, error) {
	u := newUpload(storage, opts)
	if err := checkData(storage, u.layout, u.typ, width, u.data); err != nil {
		return nil, err
	}
	t := New1D(f)
	t.bind()
	setUnpack(f)
	t.specify(0, storage, width, u.layout, u.typ, u.data)
	t.setDefaults(1)
	return t, nil
}

// SetImage specifies a mip level. Data may be nil to allocate storage
// only.
func (t *Texture1D) SetImage(level int, storage format.Format, width int, layout, typ gl.Enum, data []byte) error {
	if err := checkData(storage, layout, typ, width, data); err != nil {
		return err
	}
	t.bind()
	t.specify(level, storage, width, layout, typ, data)
	return nil
}

func (t *Texture1D) specify(level int, storage format.Format, width int, layout, typ gl.Enum, data []byte) {
	t.funcs.TexImage1D(t.target, level, gl.Enum(storage), width, layout, typ, data)
}

// Bind binds t to texture unit unit, leaving that unit active.
func (t *Texture1D) Bind(unit int) *Texture1D {
	t.BindUnit(unit)
	return t
}

// SetParameteri sets an integer texture parameter.
func (t *Texture1D) SetParameteri(pname gl.Enum, v int) *Texture1D {
	t.parameteri(pname, v)
	return t
}

// SetParameterf sets a float texture parameter.
func (t *Texture1D) SetParameterf(pname gl.Enum, v float32) *Texture1D {
	t.parameterf(pname, v)
	return t
}

// SetMinFilter sets the minification filter, such as gl.LINEAR_MIPMAP_LINEAR.
func (t *Texture1D) SetMinFilter(filter int) *Texture1D {
	return t.SetParameteri(gl.TEXTURE_MIN_FILTER, filter)
}

// SetMagFilter sets the magnification filter, gl.NEAREST or gl.LINEAR.
func (t *Texture1D) SetMagFilter(filter int) *Texture1D {
	return t.SetParameteri(gl.TEXTURE_MAG_FILTER, filter)
}

// SetMinLOD clamps the lowest level of detail that is sampled.
func (t *Texture1D) SetMinLOD(lod float32) *Texture1D {
	return t.SetParameterf(gl.TEXTURE_MIN_LOD, lod)
}

// SetMaxLOD clamps the highest level of detail that is sampled.
func (t *Texture1D) SetMaxLOD(lod float32) *Texture1D {
	return t.SetParameterf(gl.TEXTURE_MAX_LOD, lod)
}

// SetBaseLevel sets the first mip level that is sampled.
func (t *Texture1D) SetBaseLevel(level int) *Texture1D {
	return t.SetParameteri(gl.TEXTURE_BASE_LEVEL, level)
}

// SetMaxLevel sets the last mip level that is sampled.
func (t *Texture1D) SetMaxLevel(level int) *Texture1D {
	return t.SetParameteri(gl.TEXTURE_MAX_LEVEL, level)
}

// SetLODBias is added to the computed level of detail.
func (t *Texture1D) SetLODBias(bias float32) *Texture1D {
	return t.SetParameterf(gl.TEXTURE_LOD_BIAS, bias)
}

// SetWrap sets the wrap mode of the S axis. It panics unless exactly
// one mode is given.
func (t *Texture1D) SetWrap(modes ...int) *Texture1D {
	t.setWrap(1, modes)
	return t
}

// GenerateMipmap derives every level below the base level.
func (t *Texture1D) GenerateMipmap() *Texture1D {
	t.generateMipmap()
	return t
}

// Move returns a handle owning t's native texture and leaves t
// unallocated.
func (t *Texture1D) Move() *Texture1D {
	m := new(Texture1D)
	m.take(&t.handle)
	return m
}

// MoveFrom releases t's native texture, takes ownership of src's and
// leaves src unallocated. Moving a handle into itself does nothing.
func (t *Texture1D) MoveFrom(src *Texture1D) *Texture1D {
	t.take(&src.handle)
	return t
}
