// SPDX-License-Identifier: Unlicense OR MIT

// Package glfake implements gl.Functions in memory. It keeps enough
// state to observe what a caller did to the driver: object lifetimes,
// per-unit texture bindings, texture level storage, pixel store state,
// program link results and uniform writes. Shader "compilation" only
// checks for a main function and reflects uniform declarations.
package glfake

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jzq/glw/format"
	"github.com/jzq/glw/gl"
)

// MaxTextureUnits is reported for MAX_TEXTURE_IMAGE_UNITS.
const MaxTextureUnits = 16

// Functions is an in-memory OpenGL context.
type Functions struct {
	// Extensions is reported for EXTENSIONS.
	Extensions []string

	nextID uint
	err    gl.Enum

	textures     map[uint]*Texture
	shaders      map[uint]*shader
	programs     map[uint]*program
	vertexArrays map[uint]bool

	activeUnit int
	units      map[int]map[gl.Enum]gl.Texture
	current    gl.Program
	vertArray  gl.VertexArray
	pixelStore map[gl.Enum]int

	calls    map[string]int
	deletes  map[uint]int
	lastUsed gl.Program
}

// Texture is the driver side state of a texture object.
type Texture struct {
	// Target is fixed by the first bind; zero until then.
	Target gl.Enum
	Levels map[int]*Level
	Params map[gl.Enum]float32
	// Mipmaps counts GenerateMipmap calls.
	Mipmaps int
}

// Level is one specified mip level.
type Level struct {
	Width, Height, Depth int
	InternalFormat       gl.Enum
	Format, Type         gl.Enum
	Data                 []byte
	// Unpack is the pixel store state at upload time.
	Unpack map[gl.Enum]int
}

type shader struct {
	typ      gl.Enum
	src      string
	compiled bool
	log      string
	deleted  bool
}

type program struct {
	attached []uint
	linked   bool
	log      string
	uniforms []gl.ActiveUniform
	// locs holds the location of the first element of each uniform.
	// Array elements occupy consecutive locations.
	locs    []int
	nlocs   int
	values  map[int]interface{}
	deleted bool
}

var _ gl.Functions = (*Functions)(nil)

// New returns a context with no objects, texture unit 0 active and the
// default pixel store state.
func New() *Functions {
	return &Functions{
		textures:     make(map[uint]*Texture),
		shaders:      make(map[uint]*shader),
		programs:     make(map[uint]*program),
		vertexArrays: make(map[uint]bool),
		units:        make(map[int]map[gl.Enum]gl.Texture),
		pixelStore: map[gl.Enum]int{
			gl.UNPACK_ALIGNMENT: 4,
			gl.PACK_ALIGNMENT:   4,
		},
		calls:   make(map[string]int),
		deletes: make(map[uint]int),
	}
}

func (f *Functions) record(name string) {
	f.calls[name]++
}

func (f *Functions) setErr(e gl.Enum) {
	if f.err == gl.NO_ERROR {
		f.err = e
	}
}

func (f *Functions) newID() uint {
	f.nextID++
	return f.nextID
}

// Calls returns how many times the named entry point was called.
func (f *Functions) Calls(name string) int {
	return f.calls[name]
}

// Deletes returns how many times the object id was passed to a Delete
// entry point. Anything other than 0 or 1 is a double release.
func (f *Functions) Deletes(id uint) int {
	return f.deletes[id]
}

// LiveTextures returns the number of texture objects not yet deleted.
func (f *Functions) LiveTextures() int {
	return len(f.textures)
}

// LiveShaders returns the number of shader objects not yet deleted.
func (f *Functions) LiveShaders() int {
	n := 0
	for _, s := range f.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

// LivePrograms returns the number of program objects not yet deleted.
func (f *Functions) LivePrograms() int {
	n := 0
	for _, p := range f.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

// TextureState returns the state of a live texture object.
func (f *Functions) TextureState(t gl.Texture) (*Texture, bool) {
	tex, ok := f.textures[t.V]
	return tex, ok
}

// Bound returns the texture bound to target on the given unit.
func (f *Functions) Bound(unit int, target gl.Enum) gl.Texture {
	return f.units[unit][target]
}

// ActiveUnit returns the index of the active texture unit.
func (f *Functions) ActiveUnit() int {
	return f.activeUnit
}

// CurrentProgram returns the program installed by the last successful
// UseProgram.
func (f *Functions) CurrentProgram() gl.Program {
	return f.current
}

// LastUsed returns the argument of the last UseProgram call, whether or
// not the call succeeded.
func (f *Functions) LastUsed() gl.Program {
	return f.lastUsed
}

// PixelStore returns the current value of a pixel store parameter.
func (f *Functions) PixelStore(pname gl.Enum) int {
	return f.pixelStore[pname]
}

// UniformValue returns the last value written to the named uniform of
// p. Values are stored as int, uint32, float32 or []float32.
func (f *Functions) UniformValue(p gl.Program, name string) (interface{}, bool) {
	prog, ok := f.programs[p.V]
	if !ok {
		return nil, false
	}
	loc := prog.location(name)
	if loc == -1 {
		return nil, false
	}
	v, ok := prog.values[loc]
	return v, ok
}

func (f *Functions) ActiveTexture(texture gl.Enum) {
	f.record("ActiveTexture")
	unit := int(texture) - gl.TEXTURE0
	if unit < 0 || unit >= MaxTextureUnits {
		f.setErr(gl.INVALID_ENUM)
		return
	}
	f.activeUnit = unit
}

func (f *Functions) AttachShader(p gl.Program, s gl.Shader) {
	f.record("AttachShader")
	prog, ok := f.programs[p.V]
	if !ok || f.shaders[s.V] == nil {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	prog.attached = append(prog.attached, s.V)
}

func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) {
	f.record("BindTexture")
	if t.Valid() {
		tex, ok := f.textures[t.V]
		if !ok {
			f.setErr(gl.INVALID_VALUE)
			return
		}
		if tex.Target == 0 {
			tex.Target = target
		} else if tex.Target != target {
			f.setErr(gl.INVALID_OPERATION)
			return
		}
	}
	binds := f.units[f.activeUnit]
	if binds == nil {
		binds = make(map[gl.Enum]gl.Texture)
		f.units[f.activeUnit] = binds
	}
	binds[target] = t
}

func (f *Functions) BindVertexArray(a gl.VertexArray) {
	f.record("BindVertexArray")
	if a.Valid() && !f.vertexArrays[a.V] {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	f.vertArray = a
}

func (f *Functions) Clear(mask gl.Enum) {
	f.record("Clear")
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor")
}

var mainRE = regexp.MustCompile(`\bvoid\s+main\s*\(`)

func (f *Functions) CompileShader(s gl.Shader) {
	f.record("CompileShader")
	sh, ok := f.shaders[s.V]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	switch {
	case strings.TrimSpace(sh.src) == "":
		sh.compiled = false
		sh.log = "0:1(1): error: syntax error, unexpected end of file"
	case !mainRE.MatchString(sh.src):
		sh.compiled = false
		sh.log = "0:1(1): error: main function not found"
	case strings.Count(sh.src, "{") != strings.Count(sh.src, "}"):
		sh.compiled = false
		sh.log = "0:1(1): error: syntax error, unbalanced braces"
	default:
		sh.compiled = true
		sh.log = ""
	}
}

func (f *Functions) CreateProgram() gl.Program {
	f.record("CreateProgram")
	id := f.newID()
	f.programs[id] = &program{values: make(map[int]interface{})}
	return gl.Program{V: id}
}

func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	f.record("CreateShader")
	if ty != gl.VERTEX_SHADER && ty != gl.FRAGMENT_SHADER {
		f.setErr(gl.INVALID_ENUM)
		return gl.Shader{}
	}
	id := f.newID()
	f.shaders[id] = &shader{typ: ty}
	return gl.Shader{V: id}
}

func (f *Functions) CreateTexture() gl.Texture {
	f.record("CreateTexture")
	id := f.newID()
	f.textures[id] = &Texture{
		Levels: make(map[int]*Level),
		Params: make(map[gl.Enum]float32),
	}
	return gl.Texture{V: id}
}

func (f *Functions) CreateVertexArray() gl.VertexArray {
	f.record("CreateVertexArray")
	id := f.newID()
	f.vertexArrays[id] = true
	return gl.VertexArray{V: id}
}

func (f *Functions) DeleteProgram(p gl.Program) {
	f.record("DeleteProgram")
	if !p.Valid() {
		return
	}
	f.deletes[p.V]++
	prog, ok := f.programs[p.V]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	prog.deleted = true
}

func (f *Functions) DeleteShader(s gl.Shader) {
	f.record("DeleteShader")
	if !s.Valid() {
		return
	}
	f.deletes[s.V]++
	sh, ok := f.shaders[s.V]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	sh.deleted = true
}

func (f *Functions) DeleteTexture(t gl.Texture) {
	f.record("DeleteTexture")
	if !t.Valid() {
		return
	}
	f.deletes[t.V]++
	// Unknown names are silently ignored, as in GL.
	if _, ok := f.textures[t.V]; !ok {
		return
	}
	delete(f.textures, t.V)
	for _, binds := range f.units {
		for target, b := range binds {
			if b.Equal(t) {
				binds[target] = gl.Texture{}
			}
		}
	}
}

func (f *Functions) DeleteVertexArray(a gl.VertexArray) {
	f.record("DeleteVertexArray")
	if !a.Valid() {
		return
	}
	f.deletes[a.V]++
	delete(f.vertexArrays, a.V)
	if f.vertArray == a {
		f.vertArray = gl.VertexArray{}
	}
}

func (f *Functions) DetachShader(p gl.Program, s gl.Shader) {
	f.record("DetachShader")
	prog, ok := f.programs[p.V]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	for i, id := range prog.attached {
		if id == s.V {
			prog.attached = append(prog.attached[:i], prog.attached[i+1:]...)
			return
		}
	}
	f.setErr(gl.INVALID_OPERATION)
}

func (f *Functions) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays")
	if !f.current.Valid() {
		f.setErr(gl.INVALID_OPERATION)
	}
}

func (f *Functions) GenerateMipmap(target gl.Enum) {
	f.record("GenerateMipmap")
	tex := f.bound(target)
	if tex == nil {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	base := int(tex.Params[gl.TEXTURE_BASE_LEVEL])
	l, ok := tex.Levels[base]
	if !ok {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	w, h, d := l.Width, l.Height, l.Depth
	for lvl := base + 1; w > 1 || h > 1 || d > 1; lvl++ {
		w, h, d = half(w), half(h), half(d)
		tex.Levels[lvl] = &Level{
			Width: w, Height: h, Depth: d,
			InternalFormat: l.InternalFormat,
			Format:         l.Format,
			Type:           l.Type,
		}
	}
	tex.Mipmaps++
}

func half(v int) int {
	if v <= 1 {
		return v
	}
	return v / 2
}

func (f *Functions) GetActiveUniform(p gl.Program, index int) gl.ActiveUniform {
	f.record("GetActiveUniform")
	prog, ok := f.programs[p.V]
	if !ok || index < 0 || index >= len(prog.uniforms) {
		f.setErr(gl.INVALID_VALUE)
		return gl.ActiveUniform{}
	}
	return prog.uniforms[index]
}

func (f *Functions) GetError() gl.Enum {
	e := f.err
	f.err = gl.NO_ERROR
	return e
}

func (f *Functions) GetInteger(pname gl.Enum) int {
	switch pname {
	case gl.ACTIVE_TEXTURE:
		return gl.TEXTURE0 + f.activeUnit
	case gl.CURRENT_PROGRAM:
		return int(f.current.V)
	case gl.MAX_TEXTURE_IMAGE_UNITS:
		return MaxTextureUnits
	case gl.TEXTURE_BINDING_1D:
		return int(f.units[f.activeUnit][gl.TEXTURE_1D].V)
	case gl.TEXTURE_BINDING_2D:
		return int(f.units[f.activeUnit][gl.TEXTURE_2D].V)
	case gl.TEXTURE_BINDING_3D:
		return int(f.units[f.activeUnit][gl.TEXTURE_3D].V)
	case gl.UNPACK_ALIGNMENT, gl.UNPACK_IMAGE_HEIGHT, gl.UNPACK_LSB_FIRST, gl.UNPACK_ROW_LENGTH,
		gl.UNPACK_SKIP_IMAGES, gl.UNPACK_SKIP_PIXELS, gl.UNPACK_SKIP_ROWS, gl.UNPACK_SWAP_BYTES,
		gl.PACK_ALIGNMENT, gl.PACK_IMAGE_HEIGHT, gl.PACK_LSB_FIRST, gl.PACK_ROW_LENGTH,
		gl.PACK_SKIP_IMAGES, gl.PACK_SKIP_PIXELS, gl.PACK_SKIP_ROWS, gl.PACK_SWAP_BYTES:
		return f.pixelStore[pname]
	default:
		f.setErr(gl.INVALID_ENUM)
		return 0
	}
}

func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	prog, ok := f.programs[p.V]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		if prog.linked {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if prog.log == "" {
			return 0
		}
		return len(prog.log) + 1
	case gl.ACTIVE_UNIFORMS:
		return len(prog.uniforms)
	case gl.ACTIVE_UNIFORM_MAX_LENGTH:
		n := 0
		for _, u := range prog.uniforms {
			if len(u.Name)+1 > n {
				n = len(u.Name) + 1
			}
		}
		return n
	default:
		f.setErr(gl.INVALID_ENUM)
		return 0
	}
}

func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	if prog, ok := f.programs[p.V]; ok {
		return prog.log
	}
	f.setErr(gl.INVALID_VALUE)
	return ""
}

func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	sh, ok := f.shaders[s.V]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if sh.compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if sh.log == "" {
			return 0
		}
		return len(sh.log) + 1
	default:
		f.setErr(gl.INVALID_ENUM)
		return 0
	}
}

func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	if sh, ok := f.shaders[s.V]; ok {
		return sh.log
	}
	f.setErr(gl.INVALID_VALUE)
	return ""
}

func (f *Functions) GetString(pname gl.Enum) string {
	switch pname {
	case gl.VERSION:
		return "3.3.0 glfake"
	case gl.RENDERER:
		return "glfake"
	case gl.EXTENSIONS:
		return strings.Join(f.Extensions, " ")
	default:
		f.setErr(gl.INVALID_ENUM)
		return ""
	}
}

func (f *Functions) GetTexImage(target gl.Enum, level int, format, ty gl.Enum, data []byte) {
	f.record("GetTexImage")
	tex := f.bound(target)
	if tex == nil {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	l, ok := tex.Levels[level]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	if l.Format != format || l.Type != ty {
		// No conversions.
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	// Rows are written PACK_ALIGNMENT aligned; the last row is not
	// padded. Other pack parameters are ignored.
	rowBytes := l.Width * texelSize(l)
	rows := l.Height * l.Depth
	if rowBytes == 0 || rows == 0 {
		return
	}
	dstStride := alignUp(rowBytes, f.pixelStore[gl.PACK_ALIGNMENT])
	if need := dstStride*(rows-1) + rowBytes; len(data) < need {
		panic(fmt.Sprintf("glfake: GetTexImage writes %d bytes into a %d byte buffer", need, len(data)))
	}
	if l.Data == nil {
		return
	}
	srcStride := alignUp(rowBytes, l.Unpack[gl.UNPACK_ALIGNMENT])
	for r := 0; r < rows; r++ {
		copy(data[r*dstStride:r*dstStride+rowBytes], l.Data[r*srcStride:])
	}
}

func texelSize(l *Level) int {
	if e := format.ElementFor(l.Format, l.Type); e.Size() > 0 {
		return e.Size()
	}
	return format.Format(l.InternalFormat).PixelSize()
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}

func (f *Functions) GetTexLevelParameteri(target gl.Enum, level int, pname gl.Enum) int {
	f.record("GetTexLevelParameteri")
	tex := f.bound(target)
	if tex == nil {
		f.setErr(gl.INVALID_OPERATION)
		return 0
	}
	l, ok := tex.Levels[level]
	if !ok {
		return 0
	}
	switch pname {
	case gl.TEXTURE_WIDTH:
		return l.Width
	case gl.TEXTURE_HEIGHT:
		return l.Height
	case gl.TEXTURE_DEPTH:
		return l.Depth
	case gl.TEXTURE_INTERNAL_FORMAT:
		return int(l.InternalFormat)
	default:
		f.setErr(gl.INVALID_ENUM)
		return 0
	}
}

func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation")
	prog, ok := f.programs[p.V]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return gl.Uniform{V: -1}
	}
	if !prog.linked {
		f.setErr(gl.INVALID_OPERATION)
		return gl.Uniform{V: -1}
	}
	return gl.Uniform{V: prog.location(name)}
}

// location resolves a uniform name, an array base name or an array
// element such as "weights[2]".
func (p *program) location(name string) int {
	base, idx := name, 0
	indexed := false
	if i := strings.IndexByte(name, '['); i != -1 && strings.HasSuffix(name, "]") {
		n, err := strconv.Atoi(name[i+1 : len(name)-1])
		if err != nil || n < 0 {
			return -1
		}
		base, idx, indexed = name[:i], n, true
	}
	for i, u := range p.uniforms {
		array := strings.HasSuffix(u.Name, "[0]")
		if strings.TrimSuffix(u.Name, "[0]") != base || (indexed && !array) || idx >= u.Size {
			continue
		}
		return p.locs[i] + idx
	}
	return -1
}

func (f *Functions) LinkProgram(p gl.Program) {
	f.record("LinkProgram")
	prog, ok := f.programs[p.V]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	prog.linked = false
	prog.uniforms = nil
	prog.values = make(map[int]interface{})
	var vert, frag *shader
	for _, id := range prog.attached {
		sh := f.shaders[id]
		if !sh.compiled {
			prog.log = "error: linking with uncompiled/unspecialized shader"
			return
		}
		switch sh.typ {
		case gl.VERTEX_SHADER:
			vert = sh
		case gl.FRAGMENT_SHADER:
			frag = sh
		}
	}
	if vert == nil || frag == nil {
		prog.log = "error: program lacks a vertex or fragment shader"
		return
	}
	prog.linked = true
	prog.log = ""
	prog.uniforms = reflectUniforms(vert.src, frag.src)
	prog.locs, prog.nlocs = nil, 0
	for _, u := range prog.uniforms {
		prog.locs = append(prog.locs, prog.nlocs)
		prog.nlocs += u.Size
	}
}

var uniformRE = regexp.MustCompile(`(?m)\buniform\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*(\[\s*(\d+)\s*\])?\s*;`)

var uniformTypes = map[string]gl.Enum{
	"bool":        gl.BOOL,
	"int":         gl.INT,
	"ivec2":       gl.INT_VEC2,
	"ivec3":       gl.INT_VEC3,
	"ivec4":       gl.INT_VEC4,
	"uint":        gl.UNSIGNED_INT,
	"uvec2":       gl.UNSIGNED_INT_VEC2,
	"uvec3":       gl.UNSIGNED_INT_VEC3,
	"uvec4":       gl.UNSIGNED_INT_VEC4,
	"float":       gl.FLOAT,
	"vec2":        gl.FLOAT_VEC2,
	"vec3":        gl.FLOAT_VEC3,
	"vec4":        gl.FLOAT_VEC4,
	"mat3":        gl.FLOAT_MAT3,
	"mat4":        gl.FLOAT_MAT4,
	"sampler1D":   gl.SAMPLER_1D,
	"sampler2D":   gl.SAMPLER_2D,
	"sampler3D":   gl.SAMPLER_3D,
	"samplerCube": gl.SAMPLER_CUBE,
}

// reflectUniforms lists the uniforms declared by the vertex and then
// the fragment stage, in declaration order, without duplicates.
func reflectUniforms(srcs ...string) []gl.ActiveUniform {
	var uniforms []gl.ActiveUniform
	seen := make(map[string]bool)
	for _, src := range srcs {
		for _, m := range uniformRE.FindAllStringSubmatch(src, -1) {
			typ, ok := uniformTypes[m[1]]
			if !ok {
				continue
			}
			name, size := m[2], 1
			if m[3] != "" {
				fmt.Sscanf(m[4], "%d", &size)
				name += "[0]"
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			uniforms = append(uniforms, gl.ActiveUniform{Name: name, Size: size, Type: typ})
		}
	}
	return uniforms
}

func (f *Functions) PixelStorei(pname gl.Enum, param int) {
	f.record("PixelStorei")
	switch pname {
	case gl.UNPACK_ALIGNMENT, gl.PACK_ALIGNMENT:
		if param != 1 && param != 2 && param != 4 && param != 8 {
			f.setErr(gl.INVALID_VALUE)
			return
		}
	case gl.UNPACK_IMAGE_HEIGHT, gl.UNPACK_LSB_FIRST, gl.UNPACK_ROW_LENGTH, gl.UNPACK_SKIP_IMAGES,
		gl.UNPACK_SKIP_PIXELS, gl.UNPACK_SKIP_ROWS, gl.UNPACK_SWAP_BYTES,
		gl.PACK_IMAGE_HEIGHT, gl.PACK_LSB_FIRST, gl.PACK_ROW_LENGTH, gl.PACK_SKIP_IMAGES,
		gl.PACK_SKIP_PIXELS, gl.PACK_SKIP_ROWS, gl.PACK_SWAP_BYTES:
	default:
		f.setErr(gl.INVALID_ENUM)
		return
	}
	f.pixelStore[pname] = param
}

func (f *Functions) ShaderSource(s gl.Shader, src string) {
	f.record("ShaderSource")
	sh, ok := f.shaders[s.V]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	sh.src = src
}

func (f *Functions) TexImage1D(target gl.Enum, level int, internalFormat gl.Enum, width int, format, ty gl.Enum, data []byte) {
	f.record("TexImage1D")
	f.texImage(target, level, internalFormat, width, 1, 1, format, ty, data)
}

func (f *Functions) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) {
	f.record("TexImage2D")
	f.texImage(target, level, internalFormat, width, height, 1, format, ty, data)
}

func (f *Functions) TexImage3D(target gl.Enum, level int, internalFormat gl.Enum, width, height, depth int, format, ty gl.Enum, data []byte) {
	f.record("TexImage3D")
	f.texImage(target, level, internalFormat, width, height, depth, format, ty, data)
}

func (f *Functions) texImage(target gl.Enum, level int, internalFormat gl.Enum, width, height, depth int, format, ty gl.Enum, data []byte) {
	tex := f.bound(target)
	if tex == nil {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	if internalFormat == gl.INVALID_ENUM || format == gl.INVALID_ENUM || ty == gl.INVALID_ENUM {
		f.setErr(gl.INVALID_ENUM)
		return
	}
	if level < 0 || width < 0 || height < 0 || depth < 0 {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	unpack := make(map[gl.Enum]int, len(f.pixelStore))
	for k, v := range f.pixelStore {
		unpack[k] = v
	}
	l := &Level{
		Width:          width,
		Height:         height,
		Depth:          depth,
		InternalFormat: internalFormat,
		Format:         format,
		Type:           ty,
		Unpack:         unpack,
	}
	if data != nil {
		l.Data = append([]byte(nil), data...)
	}
	tex.Levels[level] = l
}

func (f *Functions) TexParameterf(target, pname gl.Enum, param float32) {
	f.record("TexParameterf")
	f.texParameter(target, pname, param)
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int) {
	f.record("TexParameteri")
	f.texParameter(target, pname, float32(param))
}

func (f *Functions) texParameter(target, pname gl.Enum, param float32) {
	tex := f.bound(target)
	if tex == nil {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	tex.Params[pname] = param
}

// bound returns the texture bound to target on the active unit.
func (f *Functions) bound(target gl.Enum) *Texture {
	t := f.units[f.activeUnit][target]
	if !t.Valid() {
		return nil
	}
	return f.textures[t.V]
}

func (f *Functions) uniform(dst gl.Uniform, v interface{}) {
	if !f.current.Valid() {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	if dst.V == -1 {
		// Silently ignored, as in GL.
		return
	}
	prog := f.programs[f.current.V]
	if dst.V < 0 || dst.V >= prog.nlocs {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	prog.values[dst.V] = v
}

func (f *Functions) Uniform1f(dst gl.Uniform, v float32) {
	f.record("Uniform1f")
	f.uniform(dst, v)
}

func (f *Functions) Uniform1i(dst gl.Uniform, v int) {
	f.record("Uniform1i")
	f.uniform(dst, v)
}

func (f *Functions) Uniform1ui(dst gl.Uniform, v uint32) {
	f.record("Uniform1ui")
	f.uniform(dst, v)
}

func (f *Functions) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	f.record("Uniform2f")
	f.uniform(dst, []float32{v0, v1})
}

func (f *Functions) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	f.record("Uniform3f")
	f.uniform(dst, []float32{v0, v1, v2})
}

func (f *Functions) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	f.record("Uniform4f")
	f.uniform(dst, []float32{v0, v1, v2, v3})
}

func (f *Functions) UniformMatrix3fv(dst gl.Uniform, v []float32) {
	f.record("UniformMatrix3fv")
	f.uniform(dst, append([]float32(nil), v...))
}

func (f *Functions) UniformMatrix4fv(dst gl.Uniform, v []float32) {
	f.record("UniformMatrix4fv")
	f.uniform(dst, append([]float32(nil), v...))
}

func (f *Functions) UseProgram(p gl.Program) {
	f.record("UseProgram")
	f.lastUsed = p
	if !p.Valid() {
		f.current = p
		return
	}
	prog, ok := f.programs[p.V]
	if !ok {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	if !prog.linked {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	f.current = p
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.record("Viewport")
}
