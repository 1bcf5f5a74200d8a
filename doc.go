// SPDX-License-Identifier: Unlicense OR MIT

/*
Package glw wraps OpenGL textures and shader programs in handles that
own their native objects.

The subpackages do the work:

	gl           handle types, enums and the Functions interface
	gl/glcore    Functions over go-gl's OpenGL 3.3 core bindings
	gl/glfake    an in-memory Functions for tests
	gl/headless  hidden-window contexts for tests and tools
	format       storage format to transfer format/type lookups
	texture      move-only 1D, 2D and 3D texture handles
	shader       programs with sampler reflection and texture binding

A current OpenGL context is assumed; only gl/headless creates one. All calls
mutate process-wide GL state and must come from the goroutine (and OS
thread) that owns the context.
*/
package glw
