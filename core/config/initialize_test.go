package config

import (
	"io"
	"log"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	fsys := afero.NewMemMapFs()
	logger := log.New(io.Discard, "", 0)

	require.NoError(t, Initialize(fsys, "work", logger))

	// Check that the written config loads and is valid.
	cfg, err := Load(fsys, "work")
	require.NoError(t, err)
	assert.Nil(t, cfg.Validate())

	sample, err := afero.ReadFile(fsys, "work/"+SampleScriptName)
	require.NoError(t, err)
	assert.NotEmpty(t, sample)
}

func TestInitializeSkipsExisting(t *testing.T) {
	fsys := afero.NewMemMapFs()
	logger := log.New(io.Discard, "", 0)

	custom := []byte("trace: \"off\"\n")
	require.NoError(t, afero.WriteFile(fsys, "config.yaml", custom, 0644))

	require.NoError(t, Initialize(fsys, ".", logger))

	// The pre-existing file was not overwritten.
	contents, err := afero.ReadFile(fsys, "config.yaml")
	require.NoError(t, err)
	assert.Equal(t, custom, contents)

	// The missing sample was still written.
	_, err = fsys.Stat(SampleScriptName)
	assert.NoError(t, err)
}
