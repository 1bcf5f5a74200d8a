// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzq/glw/format"
	"github.com/jzq/glw/gl"
	"github.com/jzq/glw/gl/glfake"
)

func TestLoadScene(t *testing.T) {
	s, err := LoadScene(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)
	assert.Equal(t, "checker", s.Title)
	assert.Equal(t, 640, s.Width)
	assert.Equal(t, filepath.Join("testdata", "triangle.vert"), s.Vertex)
	assert.Equal(t, [4]float32{0.1, 0.1, 0.12, 1}, s.Clear)
	assert.Equal(t, map[string]any{
		"u_tiles":  8,
		"u_gain":   float32(1.5),
		"u_invert": false,
	}, s.Uniforms)
	require.Len(t, s.Textures, 1)
	assert.Equal(t, TextureSpec{
		Path:       filepath.Join("testdata", "checker.png"),
		Sampler:    "u_image",
		Filter:     "linear",
		Wrap:       "repeat",
		Mipmap:     true,
		Size:       [2]int{16, 16},
		Anisotropy: 4,
	}, s.Textures[0])
}

func TestParseSceneErrors(t *testing.T) {
	tests := []string{
		`fragment = "a.frag"`,
		"vertex = \"a.vert\"\nfragment = \"a.frag\"\nfov = 90",
		"vertex = \"a.vert\"\nfragment = \"a.frag\"\n[[texture]]\npath = \"a.png\"",
		"vertex = \"a.vert\"\nfragment = \"a.frag\"\n[[texture]]\npath = \"a.png\"\nsampler = \"s\"\nfilter = \"cubic\"",
		"vertex = \"a.vert\"\nfragment = \"a.frag\"\n[[texture]]\npath = \"a.png\"\nsampler = \"s\"\nwrap = \"border\"",
		"vertex = \"a.vert\"\nfragment = \"a.frag\"\n[uniforms]\nu_name = \"text\"",
		"vertex = \"a.vert\"\nfragment = \"a.frag\"\n[[texture]]\npath = \"a.png\"\nsampler = \"s\"\nsize = [-1, 4]",
	}
	for _, test := range tests {
		_, err := parseScene(test)
		assert.Error(t, err, test)
	}
}

func TestModes(t *testing.T) {
	m, err := filterMode("linear", true)
	require.NoError(t, err)
	assert.Equal(t, gl.LINEAR_MIPMAP_LINEAR, m)
	m, err = filterMode("", false)
	require.NoError(t, err)
	assert.Equal(t, gl.NEAREST, m)
	assert.Equal(t, gl.LINEAR, magFilter("linear"))

	w, err := wrapMode("mirror")
	require.NoError(t, err)
	assert.Equal(t, gl.MIRRORED_REPEAT, w)
}

func TestSetupScene(t *testing.T) {
	s, err := LoadScene(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)
	f := glfake.New()
	f.Extensions = []string{"GL_ARB_debug_output", anisotropyExt}
	prog, textures, err := setupScene(f, s)
	require.NoError(t, err, prog.InfoLog())
	require.Len(t, textures, 1)

	tex := textures[0]
	assert.Equal(t, format.RGBA8, tex.InternalFormat(0))
	assert.Equal(t, 16, tex.Width(0))
	assert.Equal(t, 16, tex.Height(0))
	st, _ := f.TextureState(tex.ID())
	assert.Equal(t, float32(4), st.Params[gl.TEXTURE_MAX_ANISOTROPY_EXT])
	assert.Equal(t, float32(gl.REPEAT), st.Params[gl.TEXTURE_WRAP_T])
	assert.Equal(t, float32(gl.LINEAR_MIPMAP_LINEAR), st.Params[gl.TEXTURE_MIN_FILTER])
	assert.Equal(t, 1, st.Mipmaps)
	assert.Equal(t, tex.ID(), f.Bound(0, gl.TEXTURE_2D))

	v, ok := f.UniformValue(prog.ID(), "u_tiles")
	require.True(t, ok)
	assert.Equal(t, 8, v)
	v, _ = f.UniformValue(prog.ID(), "u_invert")
	assert.Equal(t, 0, v)

	prog.Release()
	tex.Release()
	assert.Equal(t, 0, f.LiveTextures())
	assert.Equal(t, 0, f.LivePrograms())
}

func TestSetupSceneLinkFailure(t *testing.T) {
	s, err := LoadScene(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)
	s.Fragment = filepath.Join("testdata", "missing.frag")
	prog, textures, err := setupScene(glfake.New(), s)
	assert.Error(t, err)
	assert.Empty(t, textures)
	assert.False(t, prog.LinkStatus())
}

func TestSetupSceneWithoutAnisotropy(t *testing.T) {
	s, err := LoadScene(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)
	f := glfake.New()
	prog, textures, err := setupScene(f, s)
	require.NoError(t, err)
	defer prog.Release()
	require.Len(t, textures, 1)
	defer textures[0].Release()
	st, _ := f.TextureState(textures[0].ID())
	_, ok := st.Params[gl.TEXTURE_MAX_ANISOTROPY_EXT]
	assert.False(t, ok)
}

func TestResizeImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(1, 0, color.Gray{Y: 200})
	dst := resizeImage(src, 4, 4, "nearest")
	assert.Equal(t, image.Rect(0, 0, 4, 4), dst.Bounds())
	assert.Equal(t, color.NRGBA{R: 200, G: 200, B: 200, A: 255}, dst.NRGBAAt(3, 1))
	assert.Equal(t, color.NRGBA{A: 255}, dst.NRGBAAt(0, 3))

	smooth := resizeImage(src, 4, 4, "linear")
	assert.Equal(t, image.Rect(0, 0, 4, 4), smooth.Bounds())
}
