// SPDX-License-Identifier: Unlicense OR MIT

package texture

import (
	"github.com/jzq/glw/format"
	"github.com/jzq/glw/gl"
)

// Texture2D is a handle to a gl.TEXTURE_2D texture.
type Texture2D struct {
	handle
}

var _ Texture = (*Texture2D)(nil)

// New2D returns an unallocated handle.
func New2D(f gl.Functions) *Texture2D {
	return &Texture2D{handle: newHandle(f, gl.TEXTURE_2D)}
}

// NewTexture2D allocates a texture and specifies level 0 in the storage
// format with the given size.
func NewTexture2D(f gl.Functions, storage format.Format, width, height int, opts ...Option) (*Texture2D, error) {
	u := newUpload(storage, opts)
	if err := checkData(storage, u.layout, u.typ, width*height, u.data); err != nil {
		return nil, err
	}
	t := New2D(f)
	t.bind()
	setUnpack(f)
	t.specify(0, storage, width, height, u.layout, u.typ, u.data)
	t.setDefaults(2)
	return t, nil
}

// SetImage specifies a mip level. Data may be nil to allocate storage
// only.
func (t *Texture2D) SetImage(level int, storage format.Format, width, height int, layout, typ gl.Enum, data []byte) error {
	if err := checkData(storage, layout, typ, width*height, data); err != nil {
		return err
	}
	t.bind()
	t.specify(level, storage, width, height, layout, typ, data)
	return nil
}

func (t *Texture2D) specify(level int, storage format.Format, width, height int, layout, typ gl.Enum, data []byte) {
	t.funcs.TexImage2D(t.target, level, gl.Enum(storage), width, height, layout, typ, data)
}

// Height returns the height of a mip level.
func (t *Texture2D) Height(level int) int {
	return t.height(level)
}

// Bind binds t to texture unit unit, leaving that unit active.
func (t *Texture2D) Bind(unit int) *Texture2D {
	t.BindUnit(unit)
	return t
}

// SetParameteri sets an integer texture parameter.
func (t *Texture2D) SetParameteri(pname gl.Enum, v int) *Texture2D {
	t.parameteri(pname, v)
	return t
}

// SetParameterf sets a float texture parameter.
func (t *Texture2D) SetParameterf(pname gl.Enum, v float32) *Texture2D {
	t.parameterf(pname, v)
	return t
}

// SetMinFilter sets the minification filter, such as gl.LINEAR_MIPMAP_LINEAR.
func (t *Texture2D) SetMinFilter(filter int) *Texture2D {
	return t.SetParameteri(gl.TEXTURE_MIN_FILTER, filter)
}

// SetMagFilter sets the magnification filter, gl.NEAREST or gl.LINEAR.
func (t *Texture2D) SetMagFilter(filter int) *Texture2D {
	return t.SetParameteri(gl.TEXTURE_MAG_FILTER, filter)
}

// SetMinLOD clamps the lowest level of detail that is sampled.
func (t *Texture2D) SetMinLOD(lod float32) *Texture2D {
	return t.SetParameterf(gl.TEXTURE_MIN_LOD, lod)
}

// SetMaxLOD clamps the highest level of detail that is sampled.
func (t *Texture2D) SetMaxLOD(lod float32) *Texture2D {
	return t.SetParameterf(gl.TEXTURE_MAX_LOD, lod)
}

// SetBaseLevel sets the first mip level that is sampled.
func (t *Texture2D) SetBaseLevel(level int) *Texture2D {
	return t.SetParameteri(gl.TEXTURE_BASE_LEVEL, level)
}

// SetMaxLevel sets the last mip level that is sampled.
func (t *Texture2D) SetMaxLevel(level int) *Texture2D {
	return t.SetParameteri(gl.TEXTURE_MAX_LEVEL, level)
}

// SetLODBias is added to the computed level of detail.
func (t *Texture2D) SetLODBias(bias float32) *Texture2D {
	return t.SetParameterf(gl.TEXTURE_LOD_BIAS, bias)
}

// SetWrap sets the wrap mode of both axes from one mode, or of S and
// T from two. Other counts panic.
func (t *Texture2D) SetWrap(modes ...int) *Texture2D {
	t.setWrap(2, modes)
	return t
}

// GenerateMipmap derives every level below the base level.
func (t *Texture2D) GenerateMipmap() *Texture2D {
	t.generateMipmap()
	return t
}

// Move returns a handle owning t's native texture and leaves t
// unallocated.
func (t *Texture2D) Move() *Texture2D {
	m := new(Texture2D)
	m.take(&t.handle)
	return m
}

// MoveFrom releases t's native texture, takes ownership of src's and
// leaves src unallocated. Moving a handle into itself does nothing.
func (t *Texture2D) MoveFrom(src *Texture2D) *Texture2D {
	t.take(&src.handle)
	return t
}
