// SPDX-License-Identifier: Unlicense OR MIT

// Command glwview draws a full-screen triangle with a fragment shader
// and a set of textures described by a TOML scene file.
//
//	glwview -config scene.toml
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jzq/glw"
	"github.com/jzq/glw/gl"
	"github.com/jzq/glw/gl/glcore"
	"github.com/jzq/glw/shader"
	"github.com/jzq/glw/texture"
)

var (
	configPath = flag.String("config", "scene.toml", "scene file")
	width      = flag.Int("width", 0, "window width, overrides the scene")
	height     = flag.Int("height", 0, "window height, overrides the scene")
	verbose    = flag.Bool("v", false, "log debug messages")
)

func init() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	glw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "glwview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	scene, err := LoadScene(*configPath)
	if err != nil {
		return err
	}
	if *width > 0 {
		scene.Width = *width
	}
	if *height > 0 {
		scene.Height = *height
	}

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(scene.Width, scene.Height, scene.Title, nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	f, err := glcore.New()
	if err != nil {
		return err
	}
	ver, _, err := gl.ParseGLVersion(f.GetString(gl.VERSION))
	if err != nil {
		return err
	}
	glw.Logger().Info("context", "version", ver, "renderer", f.GetString(gl.RENDERER),
		"anisotropy", gl.HasExtension(f.GetString(gl.EXTENSIONS), anisotropyExt))

	prog, textures, err := setupScene(f, scene)
	defer func() {
		prog.Release()
		for _, t := range textures {
			t.Release()
		}
	}()
	if err != nil {
		return err
	}

	// The vertex shader derives positions from gl_VertexID, but core
	// profiles refuse to draw without a vertex array.
	vao := f.CreateVertexArray()
	defer f.DeleteVertexArray(vao)
	f.BindVertexArray(vao)

	start := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		fbw, fbh := window.GetFramebufferSize()
		f.Viewport(0, 0, fbw, fbh)
		c := scene.Clear
		f.ClearColor(c[0], c[1], c[2], c[3])
		f.Clear(gl.COLOR_BUFFER_BIT)

		t := float32(time.Since(start).Seconds())
		aspect := float32(fbw) / float32(max(fbh, 1))
		transform := mgl32.Scale3D(1/aspect, 1, 1).Mul4(mgl32.HomogRotate3DZ(scene.Spin * t))
		prog.SetUniform("u_time", t).
			SetUniform("u_transform", transform)
		f.DrawArrays(gl.TRIANGLES, 0, 3)
		if e := f.GetError(); e != gl.NO_ERROR {
			return fmt.Errorf("draw failed: GL error %#x", uint(e))
		}
		window.SwapBuffers()
	}
	return nil
}

// setupScene builds the scene program, loads its textures and binds
// them. The returned program and textures are valid even on error and
// must be released.
func setupScene(f gl.Functions, scene *Scene) (*shader.Program, []*texture.Texture2D, error) {
	prog := shader.NewFromFiles(f, scene.Vertex, scene.Fragment)
	if !prog.LinkStatus() {
		return prog, nil, fmt.Errorf("%s, %s: link failed:\n%s", scene.Vertex, scene.Fragment, prog.InfoLog())
	}
	aniso := gl.HasExtension(f.GetString(gl.EXTENSIONS), anisotropyExt)
	textures, err := loadTextures(f, scene.Textures, aniso)
	if err != nil {
		return prog, textures, err
	}
	for i, spec := range scene.Textures {
		if err := prog.BindTexture(spec.Sampler, textures[i]); err != nil {
			// Unused samplers are optimized away by the driver.
			glw.Logger().Warn("texture not bound", "path", spec.Path, "error", err)
		}
	}
	for name, v := range scene.Uniforms {
		prog.SetUniform(name, v)
	}
	return prog, textures, nil
}

const anisotropyExt = "GL_EXT_texture_filter_anisotropic"

// loadTextures decodes, resizes and uploads the scene textures. Without
// aniso, anisotropy settings are ignored.
func loadTextures(f gl.Functions, specs []TextureSpec, aniso bool) ([]*texture.Texture2D, error) {
	var textures []*texture.Texture2D
	for _, spec := range specs {
		img, err := decodeImage(spec.Path)
		if err != nil {
			return textures, err
		}
		if w, h := spec.Size[0], spec.Size[1]; w > 0 && h > 0 {
			img = resizeImage(img, w, h, spec.Filter)
		}
		tex, err := texture.FromGoImage(f, img)
		if err != nil {
			return textures, fmt.Errorf("%s: %w", spec.Path, err)
		}
		textures = append(textures, tex)
		minFilter, _ := filterMode(spec.Filter, spec.Mipmap)
		wrap, _ := wrapMode(spec.Wrap)
		tex.SetMinFilter(minFilter).
			SetMagFilter(magFilter(spec.Filter)).
			SetWrap(wrap)
		if spec.Mipmap {
			tex.GenerateMipmap()
		}
		if spec.Anisotropy > 0 {
			if aniso {
				tex.SetParameterf(gl.TEXTURE_MAX_ANISOTROPY_EXT, spec.Anisotropy)
			} else {
				glw.Logger().Warn("anisotropic filtering unsupported", "path", spec.Path)
			}
		}
		glw.Logger().Debug("texture loaded", "path", spec.Path,
			"width", tex.Width(0), "height", tex.Height(0), "format", tex.InternalFormat(0))
	}
	return textures, nil
}
