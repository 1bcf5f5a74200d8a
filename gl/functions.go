// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the set of native entry points glw calls. Every method
// maps one to one onto an OpenGL function and must be called with the
// owning context current.
type Functions interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindTexture(target Enum, t Texture)
	BindVertexArray(a VertexArray)
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s Shader)
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	CreateVertexArray() VertexArray
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteTexture(t Texture)
	DeleteVertexArray(a VertexArray)
	DetachShader(p Program, s Shader)
	DrawArrays(mode Enum, first, count int)
	GenerateMipmap(target Enum)
	GetActiveUniform(p Program, index int) ActiveUniform
	GetError() Enum
	GetInteger(pname Enum) int
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetString(pname Enum) string
	GetTexImage(target Enum, level int, format, ty Enum, data []byte)
	GetTexLevelParameteri(target Enum, level int, pname Enum) int
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	PixelStorei(pname Enum, param int)
	ShaderSource(s Shader, src string)
	TexImage1D(target Enum, level int, internalFormat Enum, width int, format, ty Enum, data []byte)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte)
	TexImage3D(target Enum, level int, internalFormat Enum, width, height, depth int, format, ty Enum, data []byte)
	TexParameterf(target, pname Enum, param float32)
	TexParameteri(target, pname Enum, param int)
	Uniform1f(dst Uniform, v float32)
	Uniform1i(dst Uniform, v int)
	Uniform1ui(dst Uniform, v uint32)
	Uniform2f(dst Uniform, v0, v1 float32)
	Uniform3f(dst Uniform, v0, v1, v2 float32)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	UniformMatrix3fv(dst Uniform, v []float32)
	UniformMatrix4fv(dst Uniform, v []float32)
	UseProgram(p Program)
	Viewport(x, y, width, height int)
}
