// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzq/glw/format"
	"github.com/jzq/glw/gl"
	"github.com/jzq/glw/shader"
	"github.com/jzq/glw/texture"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext()
	if err != nil {
		t.Skipf("no OpenGL context available: %v", err)
	}
	t.Cleanup(c.Release)
	return c
}

func TestVersion(t *testing.T) {
	c := newTestContext(t)
	ver, err := c.Version()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ver[0]*10+ver[1], 33)
}

func TestTextureRoundTrip(t *testing.T) {
	c := newTestContext(t)
	err := c.Do(func(f gl.Functions) error {
		img := texture.NewImage2D[[4]uint8](3, 2)
		for i := range img.Pix {
			img.Pix[i] = [4]uint8{uint8(i), uint8(2 * i), uint8(3 * i), 255}
		}
		tex, err := texture.FromImage2D(f, img)
		if err != nil {
			return err
		}
		defer tex.Release()
		assert.Equal(t, format.RGBA8, tex.InternalFormat(0))
		assert.Equal(t, 3, tex.Width(0))
		assert.Equal(t, 2, tex.Height(0))

		got := make([]byte, 3*2*4)
		if err := tex.Download(0, got); err != nil {
			return err
		}
		for i, p := range img.Pix {
			assert.Equal(t, p[:], got[i*4:i*4+4], "texel %d", i)
		}
		assert.Equal(t, gl.Enum(gl.NO_ERROR), f.GetError())
		return nil
	})
	require.NoError(t, err)
}

func TestProgram(t *testing.T) {
	const vert = `#version 330 core
void main() {
	gl_Position = vec4(0);
}
`
	const frag = `#version 330 core
uniform sampler2D tex;
uniform sampler3D vol;
out vec4 color;
void main() {
	color = texture(tex, vec2(0)) + texture(vol, vec3(0));
}
`
	c := newTestContext(t)
	err := c.Do(func(f gl.Functions) error {
		p := shader.New(f, vert, frag)
		defer p.Release()
		require.True(t, p.LinkStatus(), p.InfoLog())
		require.Len(t, p.Samplers(), 2)

		vol := texture.New3D(f)
		defer vol.Release()
		var s shader.SamplerBinding
		for _, b := range p.Samplers() {
			if b.Kind == gl.SAMPLER_3D {
				s = b
			}
		}
		require.Equal(t, "vol", s.Name)
		require.NoError(t, p.BindTexture(s.Name, vol))
		assert.Equal(t, gl.TEXTURE0+s.Unit, f.GetInteger(gl.ACTIVE_TEXTURE))
		assert.Equal(t, int(vol.ID().V), f.GetInteger(gl.TEXTURE_BINDING_3D))

		bad := shader.New(f, vert, "void main() { syntax error }")
		defer bad.Release()
		assert.False(t, bad.LinkStatus())
		assert.NotEmpty(t, bad.InfoLog())
		return nil
	})
	require.NoError(t, err)
}
