// SPDX-License-Identifier: Unlicense OR MIT

package format

import (
	"fmt"
	"reflect"

	"github.com/jzq/glw/gl"
)

// Element identifies a client element type: a scalar type and a
// channel count between 1 and 4.
type Element struct {
	// Type is the scalar type, one of gl.UNSIGNED_BYTE, gl.BYTE,
	// gl.UNSIGNED_SHORT, gl.SHORT, gl.UNSIGNED_INT, gl.INT or gl.FLOAT.
	Type     gl.Enum
	Channels int
}

// Scalar is the set of Go scalar types an Element may be built from.
type Scalar interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~float32
}

// Pixel is the set of Go types usable as texels of typed images: a
// scalar or a fixed array of 2, 3 or 4 scalars. Named array types such
// as mgl32.Vec3 qualify.
type Pixel interface {
	Scalar |
		~[2]uint8 | ~[3]uint8 | ~[4]uint8 |
		~[2]int8 | ~[3]int8 | ~[4]int8 |
		~[2]uint16 | ~[3]uint16 | ~[4]uint16 |
		~[2]int16 | ~[3]int16 | ~[4]int16 |
		~[2]uint32 | ~[3]uint32 | ~[4]uint32 |
		~[2]int32 | ~[3]int32 | ~[4]int32 |
		~[2]float32 | ~[3]float32 | ~[4]float32
}

var (
	UByte  = Element{gl.UNSIGNED_BYTE, 1}
	UByte2 = Element{gl.UNSIGNED_BYTE, 2}
	UByte3 = Element{gl.UNSIGNED_BYTE, 3}
	UByte4 = Element{gl.UNSIGNED_BYTE, 4}
	Int    = Element{gl.INT, 1}
	Int2   = Element{gl.INT, 2}
	Int3   = Element{gl.INT, 3}
	Int4   = Element{gl.INT, 4}
	UInt   = Element{gl.UNSIGNED_INT, 1}
	UInt2  = Element{gl.UNSIGNED_INT, 2}
	UInt3  = Element{gl.UNSIGNED_INT, 3}
	UInt4  = Element{gl.UNSIGNED_INT, 4}
	Float  = Element{gl.FLOAT, 1}
	Float2 = Element{gl.FLOAT, 2}
	Float3 = Element{gl.FLOAT, 3}
	Float4 = Element{gl.FLOAT, 4}
)

// defaults maps elements to the storage format that holds them without
// precision loss. Only 8 and 32 bit storage is populated; 16 bit and
// signed byte elements have no default.
var defaults = map[Element]Format{
	UByte:  R8,
	UByte2: RG8,
	UByte3: RGB8,
	UByte4: RGBA8,
	Int:    R32I,
	Int2:   RG32I,
	Int3:   RGB32I,
	Int4:   RGBA32I,
	UInt:   R32UI,
	UInt2:  RG32UI,
	UInt3:  RGB32UI,
	UInt4:  RGBA32UI,
	Float:  R32F,
	Float2: RG32F,
	Float3: RGB32F,
	Float4: RGBA32F,
}

// Elements returns every element that has a default storage format.
func Elements() []Element {
	return []Element{
		UByte, UByte2, UByte3, UByte4,
		Int, Int2, Int3, Int4,
		UInt, UInt2, UInt3, UInt4,
		Float, Float2, Float3, Float4,
	}
}

// ForElement returns the default storage format for e, or Invalid.
func ForElement(e Element) Format {
	if f, ok := defaults[e]; ok {
		return f
	}
	return Invalid
}

var scalarTypes = map[reflect.Kind]gl.Enum{
	reflect.Uint8:   gl.UNSIGNED_BYTE,
	reflect.Int8:    gl.BYTE,
	reflect.Uint16:  gl.UNSIGNED_SHORT,
	reflect.Int16:   gl.SHORT,
	reflect.Uint32:  gl.UNSIGNED_INT,
	reflect.Int32:   gl.INT,
	reflect.Float32: gl.FLOAT,
}

// ElementOf returns the Element describing the Go type T.
func ElementOf[T Pixel]() Element {
	var zero T
	t := reflect.TypeOf(zero)
	n := 1
	if t.Kind() == reflect.Array {
		n = t.Len()
		t = t.Elem()
	}
	return Element{Type: scalarTypes[t.Kind()], Channels: n}
}

// ElementFor returns the Element read back through the given transfer
// layout and type, or the zero Element for packed or unknown types.
func ElementFor(layout, typ gl.Enum) Element {
	n := channels(layout)
	if n == 0 || typeSize(typ) == 0 || typ == gl.HALF_FLOAT {
		return Element{}
	}
	return Element{Type: typ, Channels: n}
}

// ElementTransfer returns the layout and type that upload elements of
// type e into storage f: the layout has e's channel count, and is an
// *_INTEGER layout when f is an integer format. Elements without a
// scalar type or with more than 4 channels yield Invalid for both.
func ElementTransfer(f Format, e Element) (layout, typ gl.Enum) {
	if typeSize(e.Type) == 0 || e.Channels < 1 || e.Channels > 4 {
		return Invalid, Invalid
	}
	layouts := [...]gl.Enum{gl.RED, gl.RG, gl.RGB, gl.RGBA}
	if f.IsInteger() {
		layouts = [...]gl.Enum{gl.RED_INTEGER, gl.RG_INTEGER, gl.RGB_INTEGER, gl.RGBA_INTEGER}
	}
	return layouts[e.Channels-1], e.Type
}

// Size returns the size in bytes of one element.
func (e Element) Size() int {
	return typeSize(e.Type) * e.Channels
}

func (e Element) String() string {
	var s string
	switch e.Type {
	case gl.UNSIGNED_BYTE:
		s = "ubyte"
	case gl.BYTE:
		s = "byte"
	case gl.UNSIGNED_SHORT:
		s = "ushort"
	case gl.SHORT:
		s = "short"
	case gl.UNSIGNED_INT:
		s = "uint"
	case gl.INT:
		s = "int"
	case gl.FLOAT:
		s = "float"
	default:
		return fmt.Sprintf("Element(%#x, %d)", uint(e.Type), e.Channels)
	}
	if e.Channels > 1 {
		s = fmt.Sprintf("%s%d", s, e.Channels)
	}
	return s
}
