// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jzq/glw/gl"
)

// Scene is the viewer configuration.
type Scene struct {
	Title    string     `toml:"title"`
	Width    int        `toml:"width"`
	Height   int        `toml:"height"`
	Vertex   string     `toml:"vertex"`
	Fragment string     `toml:"fragment"`
	Clear    [4]float32 `toml:"clear"`
	// Spin rotates u_transform around Z, in radians per second.
	Spin     float32        `toml:"spin"`
	Uniforms map[string]any `toml:"uniforms"`
	Textures []TextureSpec  `toml:"texture"`
}

// TextureSpec is one [[texture]] entry.
type TextureSpec struct {
	Path    string `toml:"path"`
	Sampler string `toml:"sampler"`
	// Filter is "nearest" or "linear".
	Filter string `toml:"filter"`
	// Wrap is "clamp", "repeat" or "mirror".
	Wrap   string `toml:"wrap"`
	Mipmap bool   `toml:"mipmap"`
	// Size rescales the image before upload when both are positive.
	Size       [2]int  `toml:"size"`
	Anisotropy float32 `toml:"anisotropy"`
}

// LoadScene reads a scene file. Relative paths inside it are resolved
// against the file's directory.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := parseScene(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	s.Vertex = resolve(dir, s.Vertex)
	s.Fragment = resolve(dir, s.Fragment)
	for i := range s.Textures {
		s.Textures[i].Path = resolve(dir, s.Textures[i].Path)
	}
	return s, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func parseScene(data string) (*Scene, error) {
	s := &Scene{
		Title:  "glwview",
		Width:  800,
		Height: 600,
		Clear:  [4]float32{0, 0, 0, 1},
	}
	md, err := toml.Decode(data, s)
	if err != nil {
		return nil, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown key %q", undec[0].String())
	}
	if s.Vertex == "" || s.Fragment == "" {
		return nil, errors.New("vertex and fragment shaders are required")
	}
	for _, t := range s.Textures {
		if t.Path == "" || t.Sampler == "" {
			return nil, errors.New("texture needs a path and a sampler")
		}
		if _, err := filterMode(t.Filter, t.Mipmap); err != nil {
			return nil, err
		}
		if _, err := wrapMode(t.Wrap); err != nil {
			return nil, err
		}
		if t.Size[0] < 0 || t.Size[1] < 0 {
			return nil, fmt.Errorf("texture %s: negative size %v", t.Path, t.Size)
		}
		if t.Anisotropy < 0 {
			return nil, fmt.Errorf("texture %s: negative anisotropy", t.Path)
		}
	}
	for name, v := range s.Uniforms {
		u, ok := uniformValue(v)
		if !ok {
			return nil, fmt.Errorf("uniform %s: unsupported value %v", name, v)
		}
		s.Uniforms[name] = u
	}
	return s, nil
}

// uniformValue converts a decoded TOML value to a type accepted by
// shader.Program.SetUniform.
func uniformValue(v any) (any, bool) {
	switch v := v.(type) {
	case int64:
		return int(v), true
	case float64:
		return float32(v), true
	case bool:
		return v, true
	default:
		return nil, false
	}
}

// filterMode returns the minification filter for name. The
// magnification filter is the same without the mipmap part.
func filterMode(name string, mipmap bool) (int, error) {
	switch name {
	case "", "nearest":
		if mipmap {
			return gl.NEAREST_MIPMAP_NEAREST, nil
		}
		return gl.NEAREST, nil
	case "linear":
		if mipmap {
			return gl.LINEAR_MIPMAP_LINEAR, nil
		}
		return gl.LINEAR, nil
	default:
		return 0, fmt.Errorf("unknown filter %q", name)
	}
}

func magFilter(name string) int {
	if name == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrapMode(name string) (int, error) {
	switch name {
	case "", "clamp":
		return gl.CLAMP_TO_EDGE, nil
	case "repeat":
		return gl.REPEAT, nil
	case "mirror":
		return gl.MIRRORED_REPEAT, nil
	default:
		return 0, fmt.Errorf("unknown wrap mode %q", name)
	}
}
