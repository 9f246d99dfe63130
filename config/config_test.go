package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIni(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deque.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadServerConfig(t *testing.T) {
	path := writeIni(t, `[Workload]
Script = addFirst:First String; addLast:Last String; removeLast
RandomOps = 10
Seed = 42
LogSnapshot = true
`)
	conf, err := LoadServerConfig(path)
	require.NoError(t, err)
	wc := conf.WorkloadConfig
	assert.Equal(t, "addFirst:First String; addLast:Last String; removeLast", wc.Script)
	assert.Equal(t, 10, wc.RandomOps)
	assert.Equal(t, int64(42), wc.Seed)
	assert.True(t, wc.LogSnapshot)
}

func TestLoadServerConfigDefaults(t *testing.T) {
	conf, err := LoadServerConfig(writeIni(t, "[Workload]\n"))
	require.NoError(t, err)
	wc := conf.WorkloadConfig
	assert.Equal(t, "", wc.Script)
	assert.Equal(t, 0, wc.RandomOps)
	assert.Equal(t, int64(1), wc.Seed)
	assert.False(t, wc.LogSnapshot)
}

func TestLoadServerConfigMissingFile(t *testing.T) {
	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestWorkloadConfigValidate(t *testing.T) {
	assert.NoError(t, (&WorkloadConfig{Script: "addLast:a"}).Validate())
	assert.NoError(t, (&WorkloadConfig{RandomOps: 5}).Validate())

	err := (&WorkloadConfig{RandomOps: -1, Script: "addLast:a"}).Validate()
	assert.True(t, errors.Is(err, errors.NotValid))
	err = (&WorkloadConfig{Script: "  "}).Validate()
	assert.True(t, errors.Is(err, errors.NotValid))
}
