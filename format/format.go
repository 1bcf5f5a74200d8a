// SPDX-License-Identifier: Unlicense OR MIT

// Package format maps texture storage formats to the client side
// transfer format and type that upload or read them without loss, and
// client element types to a default storage format.
//
// Lookups never fail: anything outside the tables resolves to Invalid,
// which callers should check for. Passing Invalid on to the driver
// makes it report GL_INVALID_ENUM.
package format

import (
	"fmt"

	"github.com/jzq/glw/gl"
)

// Format is a texture storage (internal) format.
type Format gl.Enum

// Invalid is returned for every unmapped lookup.
const Invalid = gl.INVALID_ENUM

const (
	R8       Format = gl.R8
	RG8      Format = gl.RG8
	RGB8     Format = gl.RGB8
	RGBA8    Format = gl.RGBA8
	SRGB8    Format = gl.SRGB8
	SRGBA8   Format = gl.SRGB8_ALPHA8
	R8I      Format = gl.R8I
	RG8I     Format = gl.RG8I
	RGB8I    Format = gl.RGB8I
	RGBA8I   Format = gl.RGBA8I
	R8UI     Format = gl.R8UI
	RG8UI    Format = gl.RG8UI
	RGB8UI   Format = gl.RGB8UI
	RGBA8UI  Format = gl.RGBA8UI
	R16      Format = gl.R16
	RG16     Format = gl.RG16
	R16F     Format = gl.R16F
	RG16F    Format = gl.RG16F
	RGB16F   Format = gl.RGB16F
	RGBA16F  Format = gl.RGBA16F
	R16I     Format = gl.R16I
	RG16I    Format = gl.RG16I
	RGB16I   Format = gl.RGB16I
	RGBA16I  Format = gl.RGBA16I
	R16UI    Format = gl.R16UI
	RG16UI   Format = gl.RG16UI
	RGB16UI  Format = gl.RGB16UI
	RGBA16UI Format = gl.RGBA16UI
	R32I     Format = gl.R32I
	RG32I    Format = gl.RG32I
	RGB32I   Format = gl.RGB32I
	RGBA32I  Format = gl.RGBA32I
	R32UI    Format = gl.R32UI
	RG32UI   Format = gl.RG32UI
	RGB32UI  Format = gl.RGB32UI
	RGBA32UI Format = gl.RGBA32UI
	R32F     Format = gl.R32F
	RG32F    Format = gl.RG32F
	RGB32F   Format = gl.RGB32F
	RGBA32F  Format = gl.RGBA32F

	Depth16         Format = gl.DEPTH_COMPONENT16
	Depth24         Format = gl.DEPTH_COMPONENT24
	Depth32         Format = gl.DEPTH_COMPONENT32
	Depth32F        Format = gl.DEPTH_COMPONENT32F
	Depth24Stencil8 Format = gl.DEPTH24_STENCIL8
	Depth32FStencil Format = gl.DEPTH32F_STENCIL8
)

// transfer is the layout and element type of client pixel data.
type transfer struct {
	layout gl.Enum
	typ    gl.Enum
	name   string
}

var transfers = map[Format]transfer{
	R8:     {gl.RED, gl.UNSIGNED_BYTE, "R8"},
	RG8:    {gl.RG, gl.UNSIGNED_BYTE, "RG8"},
	RGB8:   {gl.RGB, gl.UNSIGNED_BYTE, "RGB8"},
	RGBA8:  {gl.RGBA, gl.UNSIGNED_BYTE, "RGBA8"},
	SRGB8:  {gl.RGB, gl.UNSIGNED_BYTE, "SRGB8"},
	SRGBA8: {gl.RGBA, gl.UNSIGNED_BYTE, "SRGB8_ALPHA8"},

	R8I:     {gl.RED_INTEGER, gl.BYTE, "R8I"},
	RG8I:    {gl.RG_INTEGER, gl.BYTE, "RG8I"},
	RGB8I:   {gl.RGB_INTEGER, gl.BYTE, "RGB8I"},
	RGBA8I:  {gl.RGBA_INTEGER, gl.BYTE, "RGBA8I"},
	R8UI:    {gl.RED_INTEGER, gl.UNSIGNED_BYTE, "R8UI"},
	RG8UI:   {gl.RG_INTEGER, gl.UNSIGNED_BYTE, "RG8UI"},
	RGB8UI:  {gl.RGB_INTEGER, gl.UNSIGNED_BYTE, "RGB8UI"},
	RGBA8UI: {gl.RGBA_INTEGER, gl.UNSIGNED_BYTE, "RGBA8UI"},

	R16:      {gl.RED, gl.UNSIGNED_SHORT, "R16"},
	RG16:     {gl.RG, gl.UNSIGNED_SHORT, "RG16"},
	R16F:     {gl.RED, gl.HALF_FLOAT, "R16F"},
	RG16F:    {gl.RG, gl.HALF_FLOAT, "RG16F"},
	RGB16F:   {gl.RGB, gl.HALF_FLOAT, "RGB16F"},
	RGBA16F:  {gl.RGBA, gl.HALF_FLOAT, "RGBA16F"},
	R16I:     {gl.RED_INTEGER, gl.SHORT, "R16I"},
	RG16I:    {gl.RG_INTEGER, gl.SHORT, "RG16I"},
	RGB16I:   {gl.RGB_INTEGER, gl.SHORT, "RGB16I"},
	RGBA16I:  {gl.RGBA_INTEGER, gl.SHORT, "RGBA16I"},
	R16UI:    {gl.RED_INTEGER, gl.UNSIGNED_SHORT, "R16UI"},
	RG16UI:   {gl.RG_INTEGER, gl.UNSIGNED_SHORT, "RG16UI"},
	RGB16UI:  {gl.RGB_INTEGER, gl.UNSIGNED_SHORT, "RGB16UI"},
	RGBA16UI: {gl.RGBA_INTEGER, gl.UNSIGNED_SHORT, "RGBA16UI"},

	R32I:     {gl.RED_INTEGER, gl.INT, "R32I"},
	RG32I:    {gl.RG_INTEGER, gl.INT, "RG32I"},
	RGB32I:   {gl.RGB_INTEGER, gl.INT, "RGB32I"},
	RGBA32I:  {gl.RGBA_INTEGER, gl.INT, "RGBA32I"},
	R32UI:    {gl.RED_INTEGER, gl.UNSIGNED_INT, "R32UI"},
	RG32UI:   {gl.RG_INTEGER, gl.UNSIGNED_INT, "RG32UI"},
	RGB32UI:  {gl.RGB_INTEGER, gl.UNSIGNED_INT, "RGB32UI"},
	RGBA32UI: {gl.RGBA_INTEGER, gl.UNSIGNED_INT, "RGBA32UI"},
	R32F:     {gl.RED, gl.FLOAT, "R32F"},
	RG32F:    {gl.RG, gl.FLOAT, "RG32F"},
	RGB32F:   {gl.RGB, gl.FLOAT, "RGB32F"},
	RGBA32F:  {gl.RGBA, gl.FLOAT, "RGBA32F"},

	// The transfer type of depth formats follows the stored width.
	Depth16:         {gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT, "DEPTH_COMPONENT16"},
	Depth24:         {gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, "DEPTH_COMPONENT24"},
	Depth32:         {gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, "DEPTH_COMPONENT32"},
	Depth32F:        {gl.DEPTH_COMPONENT, gl.FLOAT, "DEPTH_COMPONENT32F"},
	Depth24Stencil8: {gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8, "DEPTH24_STENCIL8"},
	Depth32FStencil: {gl.DEPTH_STENCIL, gl.FLOAT_32_UNSIGNED_INT_24_8_REV, "DEPTH32F_STENCIL8"},
}

// TransferFormat returns the client layout (channel order and count)
// for uploading or reading f, or Invalid.
func TransferFormat(f Format) gl.Enum {
	if t, ok := transfers[f]; ok {
		return t.layout
	}
	return Invalid
}

// TransferType returns the client element type for f, or Invalid.
func TransferType(f Format) gl.Enum {
	if t, ok := transfers[f]; ok {
		return t.typ
	}
	return Invalid
}

// Transfer returns both TransferFormat and TransferType.
func Transfer(f Format) (layout, typ gl.Enum) {
	return TransferFormat(f), TransferType(f)
}

// Valid reports whether f has a table entry.
func (f Format) Valid() bool {
	_, ok := transfers[f]
	return ok
}

// IsDepth reports whether f stores depth, with or without stencil.
func (f Format) IsDepth() bool {
	l := TransferFormat(f)
	return l == gl.DEPTH_COMPONENT || l == gl.DEPTH_STENCIL
}

// IsInteger reports whether f stores unnormalized integers, which are
// transferred through the *_INTEGER layouts.
func (f Format) IsInteger() bool {
	switch TransferFormat(f) {
	case gl.RED_INTEGER, gl.RG_INTEGER, gl.RGB_INTEGER, gl.RGBA_INTEGER:
		return true
	}
	return false
}

// PixelSize returns the size in bytes of one texel in the transfer
// layout of f, or 0 for formats without an entry.
func (f Format) PixelSize() int {
	t, ok := transfers[f]
	if !ok {
		return 0
	}
	switch t.typ {
	case gl.UNSIGNED_INT_24_8:
		return 4
	case gl.FLOAT_32_UNSIGNED_INT_24_8_REV:
		return 8
	}
	return channels(t.layout) * typeSize(t.typ)
}

func (f Format) String() string {
	if t, ok := transfers[f]; ok {
		return t.name
	}
	return fmt.Sprintf("Format(%#x)", uint(f))
}

func channels(layout gl.Enum) int {
	switch layout {
	case gl.RED, gl.RED_INTEGER, gl.DEPTH_COMPONENT:
		return 1
	case gl.RG, gl.RG_INTEGER, gl.DEPTH_STENCIL:
		return 2
	case gl.RGB, gl.RGB_INTEGER:
		return 3
	case gl.RGBA, gl.RGBA_INTEGER:
		return 4
	default:
		return 0
	}
}

func typeSize(typ gl.Enum) int {
	switch typ {
	case gl.BYTE, gl.UNSIGNED_BYTE:
		return 1
	case gl.SHORT, gl.UNSIGNED_SHORT, gl.HALF_FLOAT:
		return 2
	case gl.INT, gl.UNSIGNED_INT, gl.FLOAT:
		return 4
	default:
		return 0
	}
}
