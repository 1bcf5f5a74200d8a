// SPDX-License-Identifier: Unlicense OR MIT

// Package headless creates OpenGL 3.3 core contexts backed by hidden
// GLFW windows, for tests and tools that need a real driver without
// putting anything on screen.
package headless

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/jzq/glw"
	"github.com/jzq/glw/gl"
	"github.com/jzq/glw/gl/glcore"
)

// Context is an OpenGL context and its hidden window.
type Context struct {
	win   *glfw.Window
	funcs *glcore.Functions
}

var (
	initOnce sync.Once
	initErr  error
)

func initGLFW() error {
	initOnce.Do(func() {
		initErr = glfw.Init()
	})
	return initErr
}

// NewContext creates a context. On macOS it must be called from the
// main thread.
func NewContext() (*Context, error) {
	if err := initGLFW(); err != nil {
		return nil, fmt.Errorf("headless: %w", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(1, 1, "glw", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("headless: %w", err)
	}
	c := &Context{win: win}
	err = c.Do(func(gl.Functions) error {
		funcs, err := glcore.New()
		c.funcs = funcs
		return err
	})
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("headless: %w", err)
	}
	return c, nil
}

// Do runs fn with the context current on a locked OS thread.
func (c *Context) Do(fn func(f gl.Functions) error) error {
	if c.win == nil {
		return errors.New("headless: context released")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	c.win.MakeContextCurrent()
	defer glfw.DetachCurrentContext()
	var f gl.Functions
	if c.funcs != nil {
		f = c.funcs
	}
	return fn(f)
}

// Version returns the version reported by the driver.
func (c *Context) Version() (ver [2]int, err error) {
	err = c.Do(func(f gl.Functions) error {
		var gles bool
		ver, gles, err = gl.ParseGLVersion(f.GetString(gl.VERSION))
		if err == nil && gles {
			err = errors.New("headless: got an OpenGL ES context")
		}
		glw.Logger().Debug("headless context", "version", ver, "renderer", f.GetString(gl.RENDERER))
		return err
	})
	return ver, err
}

// Release destroys the window and its context.
func (c *Context) Release() {
	if c.win == nil {
		return
	}
	c.win.Destroy()
	c.win = nil
}
