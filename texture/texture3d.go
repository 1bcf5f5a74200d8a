// SPDX-License-Identifier: Unlicense OR MIT

package texture

import (
	"github.com/jzq/glw/format"
	"github.com/jzq/glw/gl"
)

// Texture3D is a handle to a gl.TEXTURE_3D texture.
type Texture3D struct {
	handle
}

var _ Texture = (*Texture3D)(nil)

// New3D returns an unallocated handle.
func New3D(f gl.Functions) *Texture3D {
	return &Texture3D{handle: newHandle(f, gl.TEXTURE_3D)}
}

// NewTexture3D allocates a texture and specifies level 0 in the storage
// format with the given size.
func NewTexture3D(f gl.Functions, storage format.Format, width, height, depth int, opts ...Option) (*Texture3D, error) {
	u := newUpload(storage, opts)
	if err := checkData(storage, u.layout, u.typ, width*height*depth, u.data); err != nil {
		return nil, err
	}
	t := New3D(f)
	t.bind()
	setUnpack(f)
	t.specify(0, storage, width, height, depth, u.layout, u.typ, u.data)
	t.setDefaults(3)
	return t, nil
}

// SetImage specifies a mip level. Data may be nil to allocate storage
// only.
func (t *Texture3D) SetImage(level int, storage format.Format, width, height, depth int, layout, typ gl.Enum, data []byte) error {
	if err := checkData(storage, layout, typ, width*height*depth, data); err != nil {
		return err
	}
	t.bind()
	t.specify(level, storage, width, height, depth, layout, typ, data)
	return nil
}

func (t *Texture3D) specify(level int, storage format.Format, width, height, depth int, layout, typ gl.Enum, data []byte) {
	t.funcs.TexImage3D(t.target, level, gl.Enum(storage), width, height, depth, layout, typ, data)
}

// Height returns the height of a mip level.
func (t *Texture3D) Height(level int) int {
	return t.height(level)
}

// Depth returns the number of slices of a mip level.
func (t *Texture3D) Depth(level int) int {
	return t.depth(level)
}

// Bind binds t to texture unit unit, leaving that unit active.
func (t *Texture3D) Bind(unit int) *Texture3D {
	t.BindUnit(unit)
	return t
}

// SetParameteri sets an integer texture parameter.
func (t *Texture3D) SetParameteri(pname gl.Enum, v int) *Texture3D {
	t.parameteri(pname, v)
	return t
}

// SetParameterf sets a float texture parameter.
func (t *Texture3D) SetParameterf(pname gl.Enum, v float32) *Texture3D {
	t.parameterf(pname, v)
	return t
}

// SetMinFilter sets the minification filter, such as gl.LINEAR_MIPMAP_LINEAR.
func (t *Texture3D) SetMinFilter(filter int) *Texture3D {
	return t.SetParameteri(gl.TEXTURE_MIN_FILTER, filter)
}

// SetMagFilter sets the magnification filter, gl.NEAREST or gl.LINEAR.
func (t *Texture3D) SetMagFilter(filter int) *Texture3D {
	return t.SetParameteri(gl.TEXTURE_MAG_FILTER, filter)
}

// SetMinLOD clamps the lowest level of detail that is sampled.
func (t *Texture3D) SetMinLOD(lod float32) *Texture3D {
	return t.SetParameterf(gl.TEXTURE_MIN_LOD, lod)
}

// SetMaxLOD clamps the highest level of detail that is sampled.
func (t *Texture3D) SetMaxLOD(lod float32) *Texture3D {
	return t.SetParameterf(gl.TEXTURE_MAX_LOD, lod)
}

// SetBaseLevel sets the first mip level that is sampled.
func (t *Texture3D) SetBaseLevel(level int) *Texture3D {
	return t.SetParameteri(gl.TEXTURE_BASE_LEVEL, level)
}

// SetMaxLevel sets the last mip level that is sampled.
func (t *Texture3D) SetMaxLevel(level int) *Texture3D {
	return t.SetParameteri(gl.TEXTURE_MAX_LEVEL, level)
}

// SetLODBias is added to the computed level of detail.
func (t *Texture3D) SetLODBias(bias float32) *Texture3D {
	return t.SetParameterf(gl.TEXTURE_LOD_BIAS, bias)
}

// SetWrap sets the wrap mode of every axis from one mode, or of S, T
// and R in that order. Other counts panic.
func (t *Texture3D) SetWrap(modes ...int) *Texture3D {
	t.setWrap(3, modes)
	return t
}

// GenerateMipmap derives every level below the base level.
func (t *Texture3D) GenerateMipmap() *Texture3D {
	t.generateMipmap()
	return t
}

// Move returns a handle owning t's native texture and leaves t
// unallocated.
func (t *Texture3D) Move() *Texture3D {
	m := new(Texture3D)
	m.take(&t.handle)
	return m
}

// MoveFrom releases t's native texture, takes ownership of src's and
// leaves src unallocated. Moving a handle into itself does nothing.
func (t *Texture3D) MoveFrom(src *Texture3D) *Texture3D {
	t.take(&src.handle)
	return t
}
