package context

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuys-dase/deque/config"
)

func TestNewContextWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deque.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Workload]\nScript = addLast:a; removeFirst\nSeed = 9\n"), 0o644))
	conf, err := config.LoadServerConfig(path)
	require.NoError(t, err)

	ctx := NewContextWithConfig(conf)
	require.NotNil(t, ctx.Config)
	assert.Same(t, conf, ctx.Config)
	assert.Equal(t, "addLast:a; removeFirst", ctx.Config.WorkloadConfig.Script)
	assert.Equal(t, int64(9), ctx.Config.WorkloadConfig.Seed)

	require.NotNil(t, ctx.Counter)
	assert.Equal(t, 0, ctx.Counter.Count("addLast"))
	ctx.Counter.Add("addLast", time.Now())
	assert.Equal(t, 1, ctx.Counter.Count("addLast"))

	// 每个 Context 拥有独立的计时器
	other := NewContextWithConfig(conf)
	assert.Equal(t, 0, other.Counter.Count("addLast"))
}
