// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// ParseGLVersion parses a GL_VERSION string of a desktop or ES
// context into its major and minor numbers.
func ParseGLVersion(glVer string) (ver [2]int, gles bool, err error) {
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, true, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, false, nil
	}
	return ver, false, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}

// HasExtension reports whether the space separated extension list
// returned for EXTENSIONS contains ext.
func HasExtension(exts, ext string) bool {
	for _, e := range strings.Fields(exts) {
		if ext == e {
			return true
		}
	}
	return false
}
