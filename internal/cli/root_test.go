package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/wagetrack/internal/clock"
	"github.com/julianstephens/wagetrack/internal/config"
)

func setupTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx := &Context{
		Clock:    clock.FixedClock{T: time.Date(2026, 3, 10, 16, 30, 0, 0, time.UTC)},
		Store:    config.NewStore(filepath.Join(t.TempDir(), "wagetrack", "config.yaml")),
		Settings: config.Default(),
		Out:      &out,
	}
	return ctx, &out
}
