package gpcollapse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.txt")
	err := os.WriteFile(path, []byte("3 5 0\n12\n\n7 1\n"), 0644)
	require.Nil(t, err)
	counts := ReadCounts(path)
	assert.Equal(t, []uint64{3, 5, 0, 12, 7, 1}, counts)
}
