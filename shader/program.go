// SPDX-License-Identifier: Unlicense OR MIT

/*
Package shader builds OpenGL programs from a vertex and a fragment stage
and binds textures to their sampler uniforms by name.

Building a program never fails. The outcome is reported by LinkStatus
and the driver's messages by InfoLog. After a successful link every
active uniform is reflected, and each sampler uniform is assigned its
own texture unit, counting from zero in reflection order. Every element
of a sampler array is a sampler of its own, named like "layers[1]".

A Program owns its native object and must not be copied. Use Move or
MoveFrom to transfer ownership.
*/
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"

	"github.com/jzq/glw"
	"github.com/jzq/glw/gl"
)

// Program is a linked, or failed, shader program.
type Program struct {
	noCopy noCopy

	funcs  gl.Functions
	obj    gl.Program
	strict bool

	linked   bool
	log      string
	uniforms []UniformInfo
	samplers []SamplerBinding
}

// UniformInfo describes an active uniform. Arrays are reported by the
// name of their first element, such as "weights[0]".
type UniformInfo struct {
	Name string
	Type gl.Enum
	Size int
}

// Option configures a Program.
type Option func(*Program)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New compiles vertSrc and fragSrc, links them into a program and
// reflects its uniforms. The stage shaders are deleted before New
// returns.
func New(f gl.Functions, vertSrc, fragSrc string, opts ...Option) *Program {
	p := &Program{funcs: f}
	for _, o := range opts {
		o(p)
	}
	p.build(vertSrc, fragSrc)
	return p
}

func (p *Program) build(vertSrc, fragSrc string) {
	f := p.funcs
	vs, vlog := compile(f, gl.VERTEX_SHADER, vertSrc)
	fs, flog := compile(f, gl.FRAGMENT_SHADER, fragSrc)
	p.obj = f.CreateProgram()
	f.AttachShader(p.obj, vs)
	f.AttachShader(p.obj, fs)
	f.LinkProgram(p.obj)
	p.linked = f.GetProgrami(p.obj, gl.LINK_STATUS) == gl.TRUE
	p.log = joinLogs(vlog, flog, f.GetProgramInfoLog(p.obj))
	f.DetachShader(p.obj, vs)
	f.DetachShader(p.obj, fs)
	f.DeleteShader(vs)
	f.DeleteShader(fs)

	logger := glw.Logger()
	if !p.linked {
		logger.Warn("program link failed", "id", p.obj.V, "log", p.log)
		return
	}
	logger.Debug("program linked", "id", p.obj.V)
	p.reflect()
}

func compile(f gl.Functions, typ gl.Enum, src string) (gl.Shader, string) {
	sh := f.CreateShader(typ)
	f.ShaderSource(sh, src)
	f.CompileShader(sh)
	return sh, f.GetShaderInfoLog(sh)
}

func joinLogs(logs ...string) string {
	var parts []string
	for _, l := range logs {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, "\n")
}

// reflect records the active uniforms and assigns texture units to the
// samplers among them.
func (p *Program) reflect() {
	n := p.funcs.GetProgrami(p.obj, gl.ACTIVE_UNIFORMS)
	for i := 0; i < n; i++ {
		u := p.funcs.GetActiveUniform(p.obj, i)
		p.uniforms = append(p.uniforms, UniformInfo{Name: u.Name, Type: u.Type, Size: u.Size})
		if !isSampler(u.Type) {
			continue
		}
		// Each element of a sampler array gets its own unit.
		base, array := strings.CutSuffix(u.Name, "[0]")
		for e := 0; e < u.Size; e++ {
			name := u.Name
			if array {
				name = fmt.Sprintf("%s[%d]", base, e)
			}
			p.samplers = append(p.samplers, SamplerBinding{
				Name: name,
				Kind: u.Type,
				Unit: len(p.samplers),
			})
		}
	}
	if units := p.funcs.GetInteger(gl.MAX_TEXTURE_IMAGE_UNITS); len(p.samplers) > units {
		glw.Logger().Warn("program uses more samplers than texture units",
			"id", p.obj.V, "samplers", len(p.samplers), "units", units)
	}
}

// LinkStatus reports whether the program linked.
func (p *Program) LinkStatus() bool {
	return p.linked
}

// InfoLog returns the compile messages of the vertex and fragment
// stages followed by the link messages, or the empty string.
func (p *Program) InfoLog() string {
	return p.log
}

// ID returns the native program.
func (p *Program) ID() gl.Program {
	return p.obj
}

// Uniforms returns the active uniforms in reflection order.
func (p *Program) Uniforms() []UniformInfo {
	return slices.Clone(p.uniforms)
}

// Use installs the program as part of the current rendering state.
func (p *Program) Use() *Program {
	p.funcs.UseProgram(p.obj)
	return p
}

// SetUniform uses the program and assigns v to the named uniform. Names
// that are not active uniforms are ignored. Supported types are int,
// int32, uint32, bool, float32, float64 and the mgl32 Vec2, Vec3, Vec4,
// Mat3 and Mat4 types.
func (p *Program) SetUniform(name string, v any) *Program {
	if !p.linked {
		glw.Logger().Debug("uniform set on unlinked program", "id", p.obj.V, "name", name)
		return p
	}
	p.Use()
	loc := p.funcs.GetUniformLocation(p.obj, name)
	if !loc.Valid() {
		glw.Logger().Debug("no such uniform", "id", p.obj.V, "name", name)
		return p
	}
	f := p.funcs
	switch v := v.(type) {
	case int:
		f.Uniform1i(loc, v)
	case int32:
		f.Uniform1i(loc, int(v))
	case uint32:
		f.Uniform1ui(loc, v)
	case bool:
		b := 0
		if v {
			b = 1
		}
		f.Uniform1i(loc, b)
	case float32:
		f.Uniform1f(loc, v)
	case float64:
		f.Uniform1f(loc, float32(v))
	case mgl32.Vec2:
		f.Uniform2f(loc, v[0], v[1])
	case mgl32.Vec3:
		f.Uniform3f(loc, v[0], v[1], v[2])
	case mgl32.Vec4:
		f.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case mgl32.Mat3:
		f.UniformMatrix3fv(loc, v[:])
	case mgl32.Mat4:
		f.UniformMatrix4fv(loc, v[:])
	default:
		glw.Logger().Warn("unsupported uniform type", "name", name, "type", fmt.Sprintf("%T", v))
	}
	return p
}

// Release deletes the native program. It is a no-op for a released or
// moved-from program.
func (p *Program) Release() {
	if !p.obj.Valid() {
		return
	}
	glw.Logger().Debug("program released", "id", p.obj.V)
	p.funcs.DeleteProgram(p.obj)
	p.reset()
}

func (p *Program) reset() {
	p.obj = gl.Program{}
	p.linked = false
	p.log = ""
	p.uniforms = nil
	p.samplers = nil
}

// Move returns a Program owning p's native program and its reflection,
// and leaves p empty.
func (p *Program) Move() *Program {
	m := new(Program)
	m.take(p)
	return m
}

// MoveFrom releases p's native program and takes over src's. Moving a
// program into itself does nothing.
func (p *Program) MoveFrom(src *Program) *Program {
	p.take(src)
	return p
}

func (p *Program) take(src *Program) {
	if p == src {
		return
	}
	p.Release()
	p.funcs, p.obj, p.strict = src.funcs, src.obj, src.strict
	p.linked, p.log = src.linked, src.log
	p.uniforms, p.samplers = src.uniforms, src.samplers
	src.reset()
}
