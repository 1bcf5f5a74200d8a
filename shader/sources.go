// SPDX-License-Identifier: Unlicense OR MIT

package shader

import (
	"os"

	gioshader "gioui.org/shader"

	"github.com/jzq/glw"
	"github.com/jzq/glw/gl"
)

// NewFromFiles is like New but reads the stage sources from files. A
// file that can't be read contributes an empty source, so the program
// fails to link and InfoLog says why.
func NewFromFiles(f gl.Functions, vertPath, fragPath string, opts ...Option) *Program {
	return New(f, readSource(vertPath), readSource(fragPath), opts...)
}

func readSource(path string) string {
	src, err := os.ReadFile(path)
	if err != nil {
		glw.Logger().Warn("shader source unreadable", "path", path, "error", err)
		return ""
	}
	return string(src)
}

// NewFromSources builds a program from the GLSL 1.50 variants of
// shaders compiled by gioui.org/shader's toolchain, as accepted by
// OpenGL 3.2 core and newer.
func NewFromSources(f gl.Functions, vert, frag gioshader.Sources, opts ...Option) *Program {
	glw.Logger().Debug("program from sources", "vert", vert.Name, "frag", frag.Name)
	return New(f, vert.GLSL150, frag.GLSL150, opts...)
}
