// SPDX-License-Identifier: Unlicense OR MIT

package unsafe

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesView(t *testing.T) {
	px := [][4]uint8{{1, 2, 3, 4}, {5, 6, 7, 8}}
	b := BytesView(px)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b)
	// Views alias the original.
	b[0] = 9
	assert.Equal(t, uint8(9), px[0][0])
	assert.Nil(t, BytesView([]float32(nil)))
}

func TestFloatView(t *testing.T) {
	b := BytesView([]float32{1.5})
	require.Len(t, b, 4)
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.NativeEndian.Uint32(b)))
	assert.Equal(t, []float32{1.5}, SliceOf[float32](b))
	assert.Nil(t, SliceOf[float32](b[:3]))
}
