// SPDX-License-Identifier: Unlicense OR MIT

package glfake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzq/glw/gl"
)

func TestTextureTarget(t *testing.T) {
	f := New()
	tex := f.CreateTexture()
	f.BindTexture(gl.TEXTURE_2D, tex)
	assert.Equal(t, gl.Enum(gl.NO_ERROR), f.GetError())
	f.BindTexture(gl.TEXTURE_3D, tex)
	assert.Equal(t, gl.Enum(gl.INVALID_OPERATION), f.GetError())
	assert.False(t, f.Bound(0, gl.TEXTURE_3D).Valid())

	f.ActiveTexture(gl.TEXTURE0 + 4)
	f.BindTexture(gl.TEXTURE_2D, tex)
	f.DeleteTexture(tex)
	assert.False(t, f.Bound(0, gl.TEXTURE_2D).Valid())
	assert.False(t, f.Bound(4, gl.TEXTURE_2D).Valid())
	assert.Equal(t, 1, f.Deletes(tex.V))
	assert.Equal(t, 0, f.LiveTextures())

	f.ActiveTexture(gl.TEXTURE0 + MaxTextureUnits)
	assert.Equal(t, gl.Enum(gl.INVALID_ENUM), f.GetError())
	assert.Equal(t, 4, f.ActiveUnit())
}

func TestTexImage(t *testing.T) {
	f := New()
	tex := f.CreateTexture()
	f.BindTexture(gl.TEXTURE_2D, tex)
	f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 4, 2, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 32))
	assert.Equal(t, 4, f.GetTexLevelParameteri(gl.TEXTURE_2D, 0, gl.TEXTURE_WIDTH))
	assert.Equal(t, 2, f.GetTexLevelParameteri(gl.TEXTURE_2D, 0, gl.TEXTURE_HEIGHT))
	assert.Equal(t, 1, f.GetTexLevelParameteri(gl.TEXTURE_2D, 0, gl.TEXTURE_DEPTH))
	assert.Equal(t, 4, f.PixelStore(gl.UNPACK_ALIGNMENT))

	f.GenerateMipmap(gl.TEXTURE_2D)
	st, ok := f.TextureState(tex)
	require.True(t, ok)
	assert.Len(t, st.Levels, 3)
	assert.Equal(t, 1, st.Levels[2].Width)

	buf := make([]byte, 32)
	f.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.FLOAT, buf)
	assert.Equal(t, gl.Enum(gl.INVALID_OPERATION), f.GetError())
}

func TestProgramReflection(t *testing.T) {
	f := New()
	vs := f.CreateShader(gl.VERTEX_SHADER)
	f.ShaderSource(vs, "uniform mat4 mvp;\nuniform float weights[4];\nvoid main() {}")
	f.CompileShader(vs)
	fs := f.CreateShader(gl.FRAGMENT_SHADER)
	f.ShaderSource(fs, "uniform highp sampler2D tex;\nuniform mat4 mvp;\nvoid main() {}")
	f.CompileShader(fs)
	assert.Equal(t, gl.TRUE, f.GetShaderi(fs, gl.COMPILE_STATUS))

	p := f.CreateProgram()
	f.AttachShader(p, vs)
	f.AttachShader(p, fs)
	f.LinkProgram(p)
	require.Equal(t, gl.TRUE, f.GetProgrami(p, gl.LINK_STATUS))
	require.Equal(t, 3, f.GetProgrami(p, gl.ACTIVE_UNIFORMS))
	assert.Equal(t, gl.ActiveUniform{Name: "weights[0]", Size: 4, Type: gl.FLOAT}, f.GetActiveUniform(p, 1))
	assert.Equal(t, gl.ActiveUniform{Name: "tex", Size: 1, Type: gl.SAMPLER_2D}, f.GetActiveUniform(p, 2))
	assert.Equal(t, 1, f.GetUniformLocation(p, "weights").V)
	assert.Equal(t, -1, f.GetUniformLocation(p, "missing").V)

	f.Uniform1f(gl.Uniform{V: 0}, 1)
	assert.Equal(t, gl.Enum(gl.INVALID_OPERATION), f.GetError())
	f.UseProgram(p)
	f.Uniform1i(f.GetUniformLocation(p, "tex"), 3)
	f.Uniform1i(gl.Uniform{V: -1}, 3)
	assert.Equal(t, gl.Enum(gl.NO_ERROR), f.GetError())
	v, ok := f.UniformValue(p, "tex")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestCompileErrors(t *testing.T) {
	f := New()
	for _, src := range []string{"", "uniform float x;", "void main() {"} {
		s := f.CreateShader(gl.FRAGMENT_SHADER)
		f.ShaderSource(s, src)
		f.CompileShader(s)
		assert.Equal(t, gl.FALSE, f.GetShaderi(s, gl.COMPILE_STATUS), src)
		assert.NotEmpty(t, f.GetShaderInfoLog(s), src)
	}
}

func TestGetTexImagePackAlignment(t *testing.T) {
	f := New()
	tex := f.CreateTexture()
	f.BindTexture(gl.TEXTURE_2D, tex)
	f.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	f.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, 3, 2, gl.RED, gl.UNSIGNED_BYTE, []byte{1, 2, 3, 4, 5, 6})

	// Default alignment pads the first row to 4 bytes.
	assert.Equal(t, 4, f.GetInteger(gl.PACK_ALIGNMENT))
	assert.Panics(t, func() {
		f.GetTexImage(gl.TEXTURE_2D, 0, gl.RED, gl.UNSIGNED_BYTE, make([]byte, 6))
	})
	buf := make([]byte, 7)
	f.GetTexImage(gl.TEXTURE_2D, 0, gl.RED, gl.UNSIGNED_BYTE, buf)
	assert.Equal(t, []byte{1, 2, 3, 0, 4, 5, 6}, buf)

	f.PixelStorei(gl.PACK_ALIGNMENT, 1)
	buf = make([]byte, 6)
	f.GetTexImage(gl.TEXTURE_2D, 0, gl.RED, gl.UNSIGNED_BYTE, buf)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, buf)

	f.PixelStorei(gl.PACK_ALIGNMENT, 3)
	assert.Equal(t, gl.Enum(gl.INVALID_VALUE), f.GetError())
}

func TestArrayUniformLocations(t *testing.T) {
	f := New()
	vs := f.CreateShader(gl.VERTEX_SHADER)
	f.ShaderSource(vs, "void main() {}")
	f.CompileShader(vs)
	fs := f.CreateShader(gl.FRAGMENT_SHADER)
	f.ShaderSource(fs, "uniform sampler2D layers[3];\nuniform sampler2D mask;\nvoid main() {}")
	f.CompileShader(fs)
	p := f.CreateProgram()
	f.AttachShader(p, vs)
	f.AttachShader(p, fs)
	f.LinkProgram(p)
	require.Equal(t, gl.TRUE, f.GetProgrami(p, gl.LINK_STATUS))

	assert.Equal(t, 0, f.GetUniformLocation(p, "layers").V)
	assert.Equal(t, 0, f.GetUniformLocation(p, "layers[0]").V)
	assert.Equal(t, 2, f.GetUniformLocation(p, "layers[2]").V)
	assert.Equal(t, -1, f.GetUniformLocation(p, "layers[3]").V)
	assert.Equal(t, 3, f.GetUniformLocation(p, "mask").V)
	assert.Equal(t, -1, f.GetUniformLocation(p, "mask[0]").V)

	f.UseProgram(p)
	f.Uniform1i(f.GetUniformLocation(p, "layers[1]"), 5)
	v, ok := f.UniformValue(p, "layers[1]")
	require.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = f.UniformValue(p, "layers[0]")
	assert.False(t, ok)
}
