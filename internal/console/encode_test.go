package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Key  string `json:"key" yaml:"key"`
	Rows int    `json:"rows" yaml:"rows"`
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []record{{Key: "CPI_", Rows: 3}}))
	assert.Equal(t, "[\n  {\n    \"key\": \"CPI_\",\n    \"rows\": 3\n  }\n]\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, map[string][]record{"targets": {{Key: "CPI_", Rows: 3}}}))
	assert.Equal(t, "targets:\n  - key: CPI_\n    rows: 3\n", buf.String())
}
