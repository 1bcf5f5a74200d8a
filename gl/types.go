// SPDX-License-Identifier: Unlicense OR MIT

package gl

type Enum uint

type (
	Object      struct{ V uint }
	Program     Object
	Shader      Object
	Texture     Object
	VertexArray Object
	Uniform     struct{ V int }
)

func (o Object) valid() bool {
	return o.V != 0
}

func (p Program) Valid() bool {
	return Object(p).valid()
}

func (s Shader) Valid() bool {
	return Object(s).valid()
}

func (t Texture) Valid() bool {
	return Object(t).valid()
}

func (a VertexArray) Valid() bool {
	return Object(a).valid()
}

// Valid reports whether u names a uniform location. Writes to an
// invalid location are ignored by the driver.
func (u Uniform) Valid() bool {
	return u.V != -1
}

func (p Program) Equal(p2 Program) bool {
	return p == p2
}

func (t Texture) Equal(t2 Texture) bool {
	return t == t2
}

// ActiveUniform describes one entry of a program's active uniform
// list as reported by glGetActiveUniform.
type ActiveUniform struct {
	Name string
	Size int
	Type Enum
}
