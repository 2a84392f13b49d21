// internal/writer/builder_test.go
package writer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/tamzrod/saj-reader/internal/config"
)

func TestBuild_StdoutOnly(t *testing.T) {
	var buf bytes.Buffer

	w, closeAll, err := Build(cfg.OutputsConfig{
		Stdout: &cfg.StdoutConfig{Format: cfg.FormatYAML},
	}, &buf)
	require.NoError(t, err)
	defer closeAll()

	_, ok := w.(*StreamWriter)
	require.True(t, ok)

	require.NoError(t, w.Write(faultsResult(t)))
	assert.Contains(t, buf.String(), "unit: roof")
}

func TestBuild_NoOutputs(t *testing.T) {
	_, _, err := Build(cfg.OutputsConfig{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestBuild_BadFormat(t *testing.T) {
	_, _, err := Build(cfg.OutputsConfig{
		Stdout: &cfg.StdoutConfig{Format: "xml"},
	}, &bytes.Buffer{})
	assert.Error(t, err)
}
