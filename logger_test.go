// SPDX-License-Identifier: Unlicense OR MIT

package glw

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Warn("texture released", "id", 3)
	assert.Contains(t, buf.String(), "id=3")

	SetLogger(nil)
	Logger().Warn("dropped")
	assert.NotContains(t, buf.String(), "dropped")
}
