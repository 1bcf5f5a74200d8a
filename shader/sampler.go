// SPDX-License-Identifier: Unlicense OR MIT

package shader

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/jzq/glw"
	"github.com/jzq/glw/gl"
	"github.com/jzq/glw/texture"
)

var (
	// ErrUnknownSampler is returned when binding a texture to a name
	// that is not an active sampler uniform.
	ErrUnknownSampler = errors.New("shader: unknown sampler")
	// ErrSamplerMismatch is returned when a texture's target doesn't
	// match the kind of the sampler it is bound to.
	ErrSamplerMismatch = errors.New("shader: texture target does not match sampler")
)

// SamplerBinding is a sampler uniform and its texture unit.
type SamplerBinding struct {
	Name string
	// Kind is the uniform type, such as gl.SAMPLER_2D.
	Kind gl.Enum
	Unit int
}

// Strict makes BindTexture refuse textures whose target doesn't match
// the sampler. By default they are bound anyway.
func Strict() Option {
	return func(p *Program) {
		p.strict = true
	}
}

// Samplers returns the sampler uniforms in unit order.
func (p *Program) Samplers() []SamplerBinding {
	return slices.Clone(p.samplers)
}

// BindTexture binds tex to the texture unit of the named sampler and
// assigns that unit to the sampler uniform. Elements of sampler arrays
// are named like "layers[1]"; the bare array name is its first element.
//
// An unknown name leaves all state untouched and returns an error
// wrapping ErrUnknownSampler. A target that doesn't fit the sampler
// kind returns an error wrapping ErrSamplerMismatch; the texture is
// still bound unless the program was built with Strict.
func (p *Program) BindTexture(name string, tex texture.Texture) error {
	i := slices.IndexFunc(p.samplers, func(s SamplerBinding) bool {
		return s.Name == name || s.Name == name+"[0]"
	})
	if i == -1 {
		glw.Logger().Warn("no such sampler", "program", p.obj.V, "name", name)
		return fmt.Errorf("%w: %q", ErrUnknownSampler, name)
	}
	s := p.samplers[i]
	var err error
	if want := samplerTarget(s.Kind); want != tex.Target() {
		err = fmt.Errorf("%w: %q samples %#x, texture target is %#x", ErrSamplerMismatch, name, uint(want), uint(tex.Target()))
		glw.Logger().Warn("sampler kind mismatch", "program", p.obj.V, "name", name, "strict", p.strict)
		if p.strict {
			return err
		}
	}
	tex.BindUnit(s.Unit)
	p.Use()
	p.funcs.Uniform1i(p.funcs.GetUniformLocation(p.obj, s.Name), s.Unit)
	return err
}

func isSampler(typ gl.Enum) bool {
	return samplerTarget(typ) != 0
}

// samplerTarget returns the texture target sampled by a sampler type,
// or 0.
func samplerTarget(typ gl.Enum) gl.Enum {
	switch typ {
	case gl.SAMPLER_1D:
		return gl.TEXTURE_1D
	case gl.SAMPLER_2D:
		return gl.TEXTURE_2D
	case gl.SAMPLER_3D:
		return gl.TEXTURE_3D
	case gl.SAMPLER_CUBE:
		return gl.TEXTURE_CUBE_MAP
	default:
		return 0
	}
}
