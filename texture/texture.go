// SPDX-License-Identifier: Unlicense OR MIT

/*
Package texture implements move-only handles to 1D, 2D and 3D OpenGL
texture objects.

A handle owns at most one native texture. The native object is created
lazily the first time its name is needed, or eagerly by the constructors
that upload pixel data. Handles must not be copied; use Move or MoveFrom
to transfer ownership, and Release to delete the native object.

Methods that configure a texture bind it to the currently active texture
unit as a side effect. Bind selects a unit explicitly.
*/
package texture

import (
	"errors"
	"fmt"

	"github.com/jzq/glw"
	"github.com/jzq/glw/format"
	"github.com/jzq/glw/gl"
)

// Texture is the part of a texture handle that programs need to bind it
// to a sampler.
type Texture interface {
	// Target returns the binding target, such as gl.TEXTURE_2D.
	Target() gl.Enum
	// ID returns the native texture, allocating it if necessary.
	ID() gl.Texture
	// BindUnit binds the texture to the given texture unit and leaves
	// that unit active.
	BindUnit(unit int)
	// Release deletes the native texture, if any.
	Release()
}

// ErrShortData is returned when pixel data holds fewer bytes than the
// image it is uploaded to.
var ErrShortData = errors.New("texture: pixel data shorter than image")

// Option configures the storage constructors.
type Option func(*upload)

type upload struct {
	layout gl.Enum
	typ    gl.Enum
	data   []byte
}

// WithTransfer overrides the client layout and element type of the
// uploaded data. A zero value keeps the one derived from the storage
// format.
func WithTransfer(layout, typ gl.Enum) Option {
	return func(u *upload) {
		if layout != 0 {
			u.layout = layout
		}
		if typ != 0 {
			u.typ = typ
		}
	}
}

// WithData supplies the texels of level 0. Without it the storage is
// allocated but left undefined.
func WithData(data []byte) Option {
	return func(u *upload) {
		u.data = data
	}
}

func newUpload(f format.Format, opts []Option) upload {
	u := upload{
		layout: format.TransferFormat(f),
		typ:    format.TransferType(f),
	}
	for _, o := range opts {
		o(&u)
	}
	return u
}

// noCopy may be embedded into structs which must not be copied after
// first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// handle is the state shared by every texture dimension.
type handle struct {
	noCopy noCopy

	funcs  gl.Functions
	target gl.Enum
	obj    gl.Texture
}

func newHandle(f gl.Functions, target gl.Enum) handle {
	return handle{funcs: f, target: target}
}

// Target returns the binding target of the texture.
func (h *handle) Target() gl.Enum {
	return h.target
}

// ID returns the native texture, creating it on first use. The result
// is stable until the texture is released or moved.
func (h *handle) ID() gl.Texture {
	if !h.obj.Valid() {
		h.obj = h.funcs.CreateTexture()
		glw.Logger().Debug("texture allocated", "target", targetName(h.target), "id", h.obj.V)
	}
	return h.obj
}

// Allocated reports whether the handle owns a native texture.
func (h *handle) Allocated() bool {
	return h.obj.Valid()
}

// BindUnit binds the texture to texture unit unit.
func (h *handle) BindUnit(unit int) {
	h.funcs.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	h.funcs.BindTexture(h.target, h.ID())
}

// bind binds the texture to the active unit.
func (h *handle) bind() {
	h.funcs.BindTexture(h.target, h.ID())
}

// Release deletes the native texture. It is a no-op for an unallocated
// handle, and the handle may be used again afterwards.
func (h *handle) Release() {
	if !h.obj.Valid() {
		return
	}
	glw.Logger().Debug("texture released", "target", targetName(h.target), "id", h.obj.V)
	h.funcs.DeleteTexture(h.obj)
	h.obj = gl.Texture{}
}

// take releases the texture owned by h and transfers ownership of
// src's texture to h.
func (h *handle) take(src *handle) {
	if h == src {
		return
	}
	h.Release()
	h.funcs, h.target, h.obj = src.funcs, src.target, src.obj
	src.obj = gl.Texture{}
}

func (h *handle) parameteri(pname gl.Enum, v int) {
	h.bind()
	h.funcs.TexParameteri(h.target, pname, v)
}

func (h *handle) parameterf(pname gl.Enum, v float32) {
	h.bind()
	h.funcs.TexParameterf(h.target, pname, v)
}

func (h *handle) generateMipmap() {
	h.bind()
	h.funcs.GenerateMipmap(h.target)
}

func (h *handle) levelParameter(level int, pname gl.Enum) int {
	h.bind()
	return h.funcs.GetTexLevelParameteri(h.target, level, pname)
}

// Width returns the width of a mip level.
func (h *handle) Width(level int) int {
	return h.levelParameter(level, gl.TEXTURE_WIDTH)
}

func (h *handle) height(level int) int {
	return h.levelParameter(level, gl.TEXTURE_HEIGHT)
}

func (h *handle) depth(level int) int {
	return h.levelParameter(level, gl.TEXTURE_DEPTH)
}

// InternalFormat returns the storage format of a mip level.
func (h *handle) InternalFormat(level int) format.Format {
	return format.Format(h.levelParameter(level, gl.TEXTURE_INTERNAL_FORMAT))
}

// Download reads mip level into dst using the transfer layout and type
// of the level's storage format. Rows are read tightly packed.
func (h *handle) Download(level int, dst []byte) error {
	f := h.InternalFormat(level)
	layout, typ := format.Transfer(f)
	if layout == format.Invalid {
		return fmt.Errorf("texture: no transfer format for %v", f)
	}
	return h.read(level, layout, typ, dst)
}

// read checks that dst holds the whole level in the given transfer
// layout and type and reads it with the fixed pack state.
func (h *handle) read(level int, layout, typ gl.Enum, dst []byte) error {
	f := h.InternalFormat(level)
	size := pixelSize(f, layout, typ)
	if size == 0 {
		return fmt.Errorf("texture: cannot read %v as %#x/%#x", f, uint(layout), uint(typ))
	}
	texels := h.Width(level) * h.height(level) * h.depth(level)
	if need := texels * size; len(dst) < need {
		return fmt.Errorf("%w: got %d bytes, need %d", ErrShortData, len(dst), need)
	}
	setPack(h.funcs)
	h.funcs.GetTexImage(h.target, level, layout, typ, dst)
	return nil
}

var wrapAxes = [...]gl.Enum{gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T, gl.TEXTURE_WRAP_R}

func (h *handle) setWrap(dims int, modes []int) {
	switch len(modes) {
	case 1:
		for _, axis := range wrapAxes[:dims] {
			h.parameteri(axis, modes[0])
		}
	case dims:
		for i, m := range modes {
			h.parameteri(wrapAxes[i], m)
		}
	default:
		panic(fmt.Sprintf("texture: %d wrap modes for a %dD texture", len(modes), dims))
	}
}

// setDefaults applies the sampling state of freshly uploaded textures.
func (h *handle) setDefaults(dims int) {
	h.setWrap(dims, []int{gl.CLAMP_TO_EDGE})
	h.parameteri(gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	h.parameteri(gl.TEXTURE_MAG_FILTER, gl.NEAREST)
}

// unpackState is applied before every upload so that client data is
// read as tightly packed rows in native byte order.
var unpackState = [...]struct {
	pname gl.Enum
	v     int
}{
	{gl.UNPACK_SWAP_BYTES, 0},
	{gl.UNPACK_LSB_FIRST, 0},
	{gl.UNPACK_ROW_LENGTH, 0},
	{gl.UNPACK_SKIP_ROWS, 0},
	{gl.UNPACK_SKIP_PIXELS, 0},
	{gl.UNPACK_ALIGNMENT, 1},
	{gl.UNPACK_IMAGE_HEIGHT, 0},
	{gl.UNPACK_SKIP_IMAGES, 0},
}

func setUnpack(f gl.Functions) {
	for _, s := range unpackState {
		f.PixelStorei(s.pname, s.v)
	}
}

// packState mirrors unpackState for readbacks, so that a level is
// written to client memory as tightly packed rows.
var packState = [...]struct {
	pname gl.Enum
	v     int
}{
	{gl.PACK_SWAP_BYTES, 0},
	{gl.PACK_LSB_FIRST, 0},
	{gl.PACK_ROW_LENGTH, 0},
	{gl.PACK_SKIP_ROWS, 0},
	{gl.PACK_SKIP_PIXELS, 0},
	{gl.PACK_ALIGNMENT, 1},
	{gl.PACK_IMAGE_HEIGHT, 0},
	{gl.PACK_SKIP_IMAGES, 0},
}

func setPack(f gl.Functions) {
	for _, s := range packState {
		f.PixelStorei(s.pname, s.v)
	}
}

// checkData verifies that data, when present, covers texels pixels of
// the given transfer layout and type.
func checkData(f format.Format, layout, typ gl.Enum, texels int, data []byte) error {
	if data == nil {
		return nil
	}
	size := pixelSize(f, layout, typ)
	if size == 0 {
		// Unknown layout; the driver reports the error.
		return nil
	}
	if need := texels * size; len(data) < need {
		return fmt.Errorf("%w: got %d bytes, need %d", ErrShortData, len(data), need)
	}
	return nil
}

func pixelSize(f format.Format, layout, typ gl.Enum) int {
	if e := format.ElementFor(layout, typ); e.Size() > 0 {
		return e.Size()
	}
	if l, t := format.Transfer(f); l == layout && t == typ {
		return f.PixelSize()
	}
	return 0
}

func targetName(target gl.Enum) string {
	switch target {
	case gl.TEXTURE_1D:
		return "1D"
	case gl.TEXTURE_2D:
		return "2D"
	case gl.TEXTURE_3D:
		return "3D"
	default:
		return fmt.Sprintf("%#x", uint(target))
	}
}
