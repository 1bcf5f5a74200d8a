// SPDX-License-Identifier: Unlicense OR MIT

// Package glcore implements gl.Functions on top of the desktop OpenGL
// 3.3 core profile bindings from github.com/go-gl/gl.
package glcore

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	glw "github.com/jzq/glw/gl"
)

// Functions calls the go-gl entry points of the current context.
type Functions struct{}

var _ glw.Functions = (*Functions)(nil)

// New loads the OpenGL entry points of the current context. It must be
// called after the context is made current.
func New() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return new(Functions), nil
}

func (f *Functions) ActiveTexture(texture glw.Enum) {
	gl.ActiveTexture(uint32(texture))
}

func (f *Functions) AttachShader(p glw.Program, s glw.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BindTexture(target glw.Enum, t glw.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) BindVertexArray(a glw.VertexArray) {
	gl.BindVertexArray(uint32(a.V))
}

func (f *Functions) Clear(mask glw.Enum) {
	gl.Clear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (f *Functions) CompileShader(s glw.Shader) {
	gl.CompileShader(uint32(s.V))
}

func (f *Functions) CreateProgram() glw.Program {
	return glw.Program{V: uint(gl.CreateProgram())}
}

func (f *Functions) CreateShader(ty glw.Enum) glw.Shader {
	return glw.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}

func (f *Functions) CreateTexture() glw.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return glw.Texture{V: uint(t)}
}

func (f *Functions) CreateVertexArray() glw.VertexArray {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return glw.VertexArray{V: uint(a)}
}

func (f *Functions) DeleteProgram(p glw.Program) {
	gl.DeleteProgram(uint32(p.V))
}

func (f *Functions) DeleteShader(s glw.Shader) {
	gl.DeleteShader(uint32(s.V))
}

func (f *Functions) DeleteTexture(v glw.Texture) {
	t := uint32(v.V)
	gl.DeleteTextures(1, &t)
}

func (f *Functions) DeleteVertexArray(v glw.VertexArray) {
	a := uint32(v.V)
	gl.DeleteVertexArrays(1, &a)
}

func (f *Functions) DetachShader(p glw.Program, s glw.Shader) {
	gl.DetachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) DrawArrays(mode glw.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) GenerateMipmap(target glw.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (f *Functions) GetActiveUniform(p glw.Program, index int) glw.ActiveUniform {
	n := f.GetProgrami(p, glw.ACTIVE_UNIFORM_MAX_LENGTH)
	if n < 1 {
		n = 1
	}
	buf := make([]uint8, n)
	var length, size int32
	var typ uint32
	gl.GetActiveUniform(uint32(p.V), uint32(index), int32(len(buf)), &length, &size, &typ, &buf[0])
	return glw.ActiveUniform{
		Name: string(buf[:length]),
		Size: int(size),
		Type: glw.Enum(typ),
	}
}

func (f *Functions) GetError() glw.Enum {
	return glw.Enum(gl.GetError())
}

func (f *Functions) GetInteger(pname glw.Enum) int {
	var p [4]int32
	gl.GetIntegerv(uint32(pname), &p[0])
	return int(p[0])
}

func (f *Functions) GetProgrami(p glw.Program, pname glw.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgramInfoLog(p glw.Program) string {
	n := f.GetProgrami(p, glw.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]uint8, n)
	var length int32
	gl.GetProgramInfoLog(uint32(p.V), int32(n), &length, &buf[0])
	return string(buf[:length])
}

func (f *Functions) GetShaderi(s glw.Shader, pname glw.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetShaderInfoLog(s glw.Shader) string {
	n := f.GetShaderi(s, glw.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]uint8, n)
	var length int32
	gl.GetShaderInfoLog(uint32(s.V), int32(n), &length, &buf[0])
	return string(buf[:length])
}

func (f *Functions) GetString(pname glw.Enum) string {
	switch pname {
	case glw.EXTENSIONS:
		// The core profile doesn't support glGetString(GL_EXTENSIONS).
		var exts []string
		n := f.GetInteger(glw.NUM_EXTENSIONS)
		for i := 0; i < n; i++ {
			exts = append(exts, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
		}
		return strings.Join(exts, " ")
	default:
		return gl.GoStr(gl.GetString(uint32(pname)))
	}
}

func (f *Functions) GetTexImage(target glw.Enum, level int, format, ty glw.Enum, data []byte) {
	gl.GetTexImage(uint32(target), int32(level), uint32(format), uint32(ty), ptr(data))
}

func (f *Functions) GetTexLevelParameteri(target glw.Enum, level int, pname glw.Enum) int {
	var v int32
	gl.GetTexLevelParameteriv(uint32(target), int32(level), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetUniformLocation(p glw.Program, name string) glw.Uniform {
	return glw.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), gl.Str(name+"\x00")))}
}

func (f *Functions) LinkProgram(p glw.Program) {
	gl.LinkProgram(uint32(p.V))
}

func (f *Functions) PixelStorei(pname glw.Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

func (f *Functions) ShaderSource(s glw.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s.V), 1, csources, nil)
	free()
}

func (f *Functions) TexImage1D(target glw.Enum, level int, internalFormat glw.Enum, width int, format, ty glw.Enum, data []byte) {
	gl.TexImage1D(uint32(target), int32(level), int32(internalFormat), int32(width), 0, uint32(format), uint32(ty), ptr(data))
}

func (f *Functions) TexImage2D(target glw.Enum, level int, internalFormat glw.Enum, width, height int, format, ty glw.Enum, data []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr(data))
}

func (f *Functions) TexImage3D(target glw.Enum, level int, internalFormat glw.Enum, width, height, depth int, format, ty glw.Enum, data []byte) {
	gl.TexImage3D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), int32(depth), 0, uint32(format), uint32(ty), ptr(data))
}

func (f *Functions) TexParameterf(target, pname glw.Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (f *Functions) TexParameteri(target, pname glw.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) Uniform1f(dst glw.Uniform, v float32) {
	gl.Uniform1f(int32(dst.V), v)
}

func (f *Functions) Uniform1i(dst glw.Uniform, v int) {
	gl.Uniform1i(int32(dst.V), int32(v))
}

func (f *Functions) Uniform1ui(dst glw.Uniform, v uint32) {
	gl.Uniform1ui(int32(dst.V), v)
}

func (f *Functions) Uniform2f(dst glw.Uniform, v0, v1 float32) {
	gl.Uniform2f(int32(dst.V), v0, v1)
}

func (f *Functions) Uniform3f(dst glw.Uniform, v0, v1, v2 float32) {
	gl.Uniform3f(int32(dst.V), v0, v1, v2)
}

func (f *Functions) Uniform4f(dst glw.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(dst.V), v0, v1, v2, v3)
}

func (f *Functions) UniformMatrix3fv(dst glw.Uniform, v []float32) {
	gl.UniformMatrix3fv(int32(dst.V), int32(len(v)/9), false, &v[0])
}

func (f *Functions) UniformMatrix4fv(dst glw.Uniform, v []float32) {
	gl.UniformMatrix4fv(int32(dst.V), int32(len(v)/16), false, &v[0])
}

func (f *Functions) UseProgram(p glw.Program) {
	gl.UseProgram(uint32(p.V))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// ptr returns a pointer to the first element of data, or nil for an
// empty slice, which the driver treats as "allocate only".
func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}
