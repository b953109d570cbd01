package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	m.Run()
}

func intPtr(v int) *int {
	return &v
}

func TestParseBoardArgs(t *testing.T) {
	base := boardParams{rows: 10, cols: 10, mines: 15}

	tests := []struct {
		name string
		args []string
		want boardParams
	}{
		{"no args keep the base", nil, base},
		{"three valid args", []string{"16", "30", "99"}, boardParams{16, 30, 99}},
		{"zero mines is a legal board", []string{"3", "3", "0"}, boardParams{3, 3, 0}},
		{"too few args", []string{"12", "12"}, base},
		{"too many args", []string{"1", "2", "3", "4"}, base},
		{"not a number", []string{"a", "10", "5"}, base},
		{"zero rows", []string{"0", "10", "5"}, base},
		{"negative mines", []string{"5", "5", "-1"}, base},
		{"mines fill the board", []string{"5", "5", "25"}, base},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, parseBoardArgs(test.args, base))
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomines.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 16\ncols: 30\nmines: 99\nseed: 7\n"), 0o644))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Rows)
	assert.Equal(t, 30, cfg.Cols)
	require.NotNil(t, cfg.Mines)
	assert.Equal(t, 99, *cfg.Mines)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestLoadConfigFileErrors(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: [oops"), 0o644))
	_, err = loadConfigFile(path)
	assert.Error(t, err)
}

func TestFileConfigApply(t *testing.T) {
	base := boardParams{rows: 10, cols: 10, mines: 15}

	tests := []struct {
		name string
		cfg  fileConfig
		want boardParams
	}{
		{"empty file keeps the base", fileConfig{}, base},
		{"full override", fileConfig{Rows: 16, Cols: 30, Mines: intPtr(99)}, boardParams{16, 30, 99}},
		{"partial override", fileConfig{Rows: 12}, boardParams{12, 10, 15}},
		{"explicit zero mines", fileConfig{Mines: intPtr(0)}, boardParams{10, 10, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.cfg.apply(base))
		})
	}
}

func TestBoardParamsValid(t *testing.T) {
	assert.True(t, boardParams{rows: 10, cols: 10, mines: 15}.valid())
	assert.True(t, boardParams{rows: 1, cols: 2, mines: 0}.valid())
	assert.False(t, boardParams{rows: 0, cols: 10, mines: 5}.valid())
	assert.False(t, boardParams{rows: 10, cols: 10, mines: 100}.valid(), "a full board has no safe cell")
	assert.False(t, boardParams{rows: 10, cols: 10, mines: -1}.valid())
}
