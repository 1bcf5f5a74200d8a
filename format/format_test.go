// SPDX-License-Identifier: Unlicense OR MIT

package format

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/jzq/glw/gl"
)

func TestDepthTransferTypes(t *testing.T) {
	tests := []struct {
		f   Format
		typ gl.Enum
	}{
		{Depth16, gl.UNSIGNED_SHORT},
		{Depth24, gl.UNSIGNED_INT},
		{Depth32, gl.UNSIGNED_INT},
		{Depth32F, gl.FLOAT},
	}
	for _, test := range tests {
		layout, typ := Transfer(test.f)
		assert.Equal(t, gl.Enum(gl.DEPTH_COMPONENT), layout, test.f.String())
		assert.Equal(t, test.typ, typ, test.f.String())
		assert.True(t, test.f.IsDepth())
	}
}

func TestElementRoundTrip(t *testing.T) {
	for _, e := range Elements() {
		f := ForElement(e)
		if !assert.NotEqual(t, Format(Invalid), f, e.String()) {
			continue
		}
		layout, typ := Transfer(f)
		assert.Equal(t, e.Type, typ, e.String())
		assert.Equal(t, e, ElementFor(layout, typ), e.String())
		assert.Equal(t, e.Size(), f.PixelSize(), e.String())
	}
}

func TestElementOf(t *testing.T) {
	assert.Equal(t, UByte, ElementOf[uint8]())
	assert.Equal(t, UByte4, ElementOf[[4]uint8]())
	assert.Equal(t, Int2, ElementOf[[2]int32]())
	assert.Equal(t, UInt3, ElementOf[[3]uint32]())
	assert.Equal(t, Float, ElementOf[float32]())
	assert.Equal(t, Float3, ElementOf[mgl32.Vec3]())
	assert.Equal(t, Element{gl.UNSIGNED_SHORT, 1}, ElementOf[uint16]())

	assert.Equal(t, RGBA8, ForElement(ElementOf[[4]uint8]()))
	assert.Equal(t, gl.Enum(gl.UNSIGNED_BYTE), TransferType(ForElement(ElementOf[[4]uint8]())))
	assert.Equal(t, RGBA32F, ForElement(ElementOf[mgl32.Vec4]()))
}

func TestNoSixteenBitDefaults(t *testing.T) {
	for _, e := range []Element{
		ElementOf[uint16](), ElementOf[[2]int16](), ElementOf[int8](),
	} {
		assert.Equal(t, Format(Invalid), ForElement(e), e.String())
	}
}

func TestIntegerLayouts(t *testing.T) {
	assert.Equal(t, gl.Enum(gl.RED_INTEGER), TransferFormat(R32I))
	assert.Equal(t, gl.Enum(gl.RGBA_INTEGER), TransferFormat(RGBA32UI))
	assert.Equal(t, gl.Enum(gl.RG_INTEGER), TransferFormat(RG16I))
	assert.Equal(t, gl.Enum(gl.SHORT), TransferType(RG16I))
}

func TestUnmapped(t *testing.T) {
	// COMPRESSED_RGBA_S3TC_DXT5_EXT.
	const dxt5 = Format(0x83f3)
	assert.False(t, dxt5.Valid())
	assert.Equal(t, gl.Enum(Invalid), TransferFormat(dxt5))
	assert.Equal(t, gl.Enum(Invalid), TransferType(dxt5))
	assert.Equal(t, 0, dxt5.PixelSize())
	assert.False(t, dxt5.IsDepth())
	assert.Equal(t, "Format(0x83f3)", dxt5.String())
	assert.Equal(t, Format(Invalid), ForElement(Element{}))
}

func TestPackedDepthStencil(t *testing.T) {
	assert.Equal(t, 4, Depth24Stencil8.PixelSize())
	assert.Equal(t, 8, Depth32FStencil.PixelSize())
	assert.Equal(t, Element{}, ElementFor(Transfer(Depth24Stencil8)))
}

func TestElementTransfer(t *testing.T) {
	tests := []struct {
		f           Format
		e           Element
		layout, typ gl.Enum
	}{
		{R16F, Float, gl.RED, gl.FLOAT},
		{RGBA8, UByte4, gl.RGBA, gl.UNSIGNED_BYTE},
		{RG16I, Int2, gl.RG_INTEGER, gl.INT},
		{RGB8UI, UByte3, gl.RGB_INTEGER, gl.UNSIGNED_BYTE},
		{R8, Element{}, Invalid, Invalid},
	}
	for _, test := range tests {
		layout, typ := ElementTransfer(test.f, test.e)
		assert.Equal(t, test.layout, layout, "%v %v", test.f, test.e)
		assert.Equal(t, test.typ, typ, "%v %v", test.f, test.e)
	}
	assert.True(t, R32UI.IsInteger())
	assert.False(t, R32F.IsInteger())
	assert.False(t, Format(Invalid).IsInteger())
}
