// SPDX-License-Identifier: Unlicense OR MIT

package texture

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/jzq/glw/format"
	"github.com/jzq/glw/gl"
	"github.com/jzq/glw/internal/unsafe"
)

// Image2D is a dense row-major image of typed texels.
type Image2D[T format.Pixel] struct {
	Width, Height int
	Pix           []T
}

// Image3D is a dense stack of Depth row-major slices.
type Image3D[T format.Pixel] struct {
	Width, Height, Depth int
	Pix                  []T
}

// NewImage2D returns a zeroed width by height image.
func NewImage2D[T format.Pixel](width, height int) *Image2D[T] {
	return &Image2D[T]{Width: width, Height: height, Pix: make([]T, width*height)}
}

// NewImage3D returns a zeroed image of depth slices.
func NewImage3D[T format.Pixel](width, height, depth int) *Image3D[T] {
	return &Image3D[T]{Width: width, Height: height, Depth: depth, Pix: make([]T, width*height*depth)}
}

// At returns the texel at column x of row y.
func (m *Image2D[T]) At(x, y int) T {
	return m.Pix[y*m.Width+x]
}

// Set stores v at column x of row y.
func (m *Image2D[T]) Set(x, y int, v T) {
	m.Pix[y*m.Width+x] = v
}

// At returns the texel at column x of row y in slice z.
func (m *Image3D[T]) At(x, y, z int) T {
	return m.Pix[(z*m.Height+y)*m.Width+x]
}

// Set stores v at column x of row y in slice z.
func (m *Image3D[T]) Set(x, y, z int, v T) {
	m.Pix[(z*m.Height+y)*m.Width+x] = v
}

// storageOf returns the default storage format for texels of type T.
// Types without a default map to format.Invalid, which is passed on to
// the driver.
func storageOf[T format.Pixel]() format.Format {
	return format.ForElement(format.ElementOf[T]())
}

// elementTransfer returns the option that uploads texels of type T
// into storage.
func elementTransfer[T format.Pixel](storage format.Format) Option {
	return WithTransfer(format.ElementTransfer(storage, format.ElementOf[T]()))
}

// FromImage1D uploads a row of texels into a new 1D texture whose
// storage format is the default for T.
func FromImage1D[T format.Pixel](f gl.Functions, pix []T) (*Texture1D, error) {
	return FromImage1DAs(f, storageOf[T](), pix)
}

// FromImage2D uploads img into a new 2D texture whose storage format is
// the default for T.
func FromImage2D[T format.Pixel](f gl.Functions, img *Image2D[T]) (*Texture2D, error) {
	return FromImage2DAs(f, storageOf[T](), img)
}

// FromImage3D uploads img into a new 3D texture whose storage format is
// the default for T.
func FromImage3D[T format.Pixel](f gl.Functions, img *Image3D[T]) (*Texture3D, error) {
	return FromImage3DAs(f, storageOf[T](), img)
}

// FromImage1DAs is like FromImage1D but stores the texels in storage.
// The transfer layout and type follow T; the driver converts.
func FromImage1DAs[T format.Pixel](f gl.Functions, storage format.Format, pix []T) (*Texture1D, error) {
	return NewTexture1D(f, storage, len(pix), elementTransfer[T](storage), WithData(unsafe.BytesView(pix)))
}

// FromImage2DAs is like FromImage2D but stores the texels in storage.
// Integer storage formats are uploaded through the *_INTEGER layouts.
func FromImage2DAs[T format.Pixel](f gl.Functions, storage format.Format, img *Image2D[T]) (*Texture2D, error) {
	return NewTexture2D(f, storage, img.Width, img.Height, elementTransfer[T](storage), WithData(unsafe.BytesView(img.Pix)))
}

// FromImage3DAs is like FromImage3D but stores the texels in storage.
func FromImage3DAs[T format.Pixel](f gl.Functions, storage format.Format, img *Image3D[T]) (*Texture3D, error) {
	return NewTexture3D(f, storage, img.Width, img.Height, img.Depth, elementTransfer[T](storage), WithData(unsafe.BytesView(img.Pix)))
}

// ReadImage1D reads a mip level of t as texels of type T.
func ReadImage1D[T format.Pixel](t *Texture1D, level int) ([]T, error) {
	return readTexels[T](&t.handle, level, t.Width(level))
}

// ReadImage2D reads a mip level of t as texels of type T. The driver
// converts from the storage format.
func ReadImage2D[T format.Pixel](t *Texture2D, level int) (*Image2D[T], error) {
	w, h := t.Width(level), t.Height(level)
	pix, err := readTexels[T](&t.handle, level, w*h)
	if err != nil {
		return nil, err
	}
	return &Image2D[T]{Width: w, Height: h, Pix: pix}, nil
}

// ReadImage3D reads a mip level of t as texels of type T.
func ReadImage3D[T format.Pixel](t *Texture3D, level int) (*Image3D[T], error) {
	w, h, d := t.Width(level), t.Height(level), t.Depth(level)
	pix, err := readTexels[T](&t.handle, level, w*h*d)
	if err != nil {
		return nil, err
	}
	return &Image3D[T]{Width: w, Height: h, Depth: d, Pix: pix}, nil
}

func readTexels[T format.Pixel](h *handle, level, texels int) ([]T, error) {
	e := format.ElementOf[T]()
	layout, typ := format.ElementTransfer(h.InternalFormat(level), e)
	if layout == format.Invalid {
		return nil, fmt.Errorf("texture: no transfer for element %v", e)
	}
	buf := make([]byte, texels*e.Size())
	if err := h.read(level, layout, typ, buf); err != nil {
		return nil, err
	}
	return unsafe.SliceOf[T](buf), nil
}

// FromGoImage uploads img into a new 2D texture. Gray and alpha images
// are stored as R8, RGBA and NRGBA images as RGBA8 without conversion;
// anything else is converted to NRGBA first. Rows are uploaded top row
// first, so the top of the image is at t=0.
func FromGoImage(f gl.Functions, img image.Image) (*Texture2D, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	var (
		storage format.Format
		pix     []byte
	)
	switch m := img.(type) {
	case *image.Gray:
		storage, pix = format.R8, packRows(m.Pix, m.Stride, m.PixOffset(b.Min.X, b.Min.Y), w, h)
	case *image.Alpha:
		storage, pix = format.R8, packRows(m.Pix, m.Stride, m.PixOffset(b.Min.X, b.Min.Y), w, h)
	case *image.RGBA:
		storage, pix = format.RGBA8, packRows(m.Pix, m.Stride, m.PixOffset(b.Min.X, b.Min.Y), w*4, h)
	case *image.NRGBA:
		storage, pix = format.RGBA8, packRows(m.Pix, m.Stride, m.PixOffset(b.Min.X, b.Min.Y), w*4, h)
	default:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		storage, pix = format.RGBA8, dst.Pix
	}
	return NewTexture2D(f, storage, w, h, WithData(pix))
}

// packRows returns the rows of a strided image as one tightly packed
// slice, sharing memory when the rows are already contiguous.
func packRows(pix []byte, stride, off, rowBytes, rows int) []byte {
	if rows == 0 || rowBytes == 0 {
		return nil
	}
	if stride == rowBytes {
		return pix[off : off+rowBytes*rows]
	}
	packed := make([]byte, 0, rowBytes*rows)
	for y := 0; y < rows; y++ {
		start := off + y*stride
		packed = append(packed, pix[start:start+rowBytes]...)
	}
	return packed
}
