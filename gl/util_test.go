// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in   string
		ver  [2]int
		gles bool
	}{
		{"3.3.0 NVIDIA 535.54.03", [2]int{3, 3}, false},
		{"4.6 (Core Profile) Mesa 23.0.4", [2]int{4, 6}, false},
		{"OpenGL ES 3.2 Mesa 23.0.4", [2]int{3, 2}, true},
	}
	for _, test := range tests {
		ver, gles, err := ParseGLVersion(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.ver, ver, test.in)
		assert.Equal(t, test.gles, gles, test.in)
	}
	_, _, err := ParseGLVersion("WebGL")
	assert.Error(t, err)
}

func TestHasExtension(t *testing.T) {
	exts := "GL_ARB_texture_storage GL_EXT_texture_filter_anisotropic"
	assert.True(t, HasExtension(exts, "GL_EXT_texture_filter_anisotropic"))
	assert.False(t, HasExtension(exts, "GL_EXT_texture"))
}

func TestHandleValidity(t *testing.T) {
	assert.False(t, Texture{}.Valid())
	assert.True(t, Texture{V: 3}.Valid())
	assert.False(t, Uniform{V: -1}.Valid())
	assert.True(t, Uniform{V: 0}.Valid())
	assert.True(t, Program{V: 2}.Equal(Program{V: 2}))
}
