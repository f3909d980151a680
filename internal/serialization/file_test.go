package serialization

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matrixStore adapts matrices to io.WriterTo and io.ReaderFrom.
type matrixStore struct {
	matrixSet
}

func (s matrixStore) ReadFrom(r io.Reader) (int64, error) {
	return ReadMatrices(r, s.matrixSet)
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.bin")

	src := matrixStore{matrixSet{
		mustMatrix(t, [][]float64{{0.1, 0.2}, {0.3, 0.4}}),
		mustMatrix(t, [][]float64{{-1}, {1}}),
	}}
	require.NoError(t, SaveFile(path, src))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, StreamSize(6), info.Size())

	dst := matrixStore{matrixSet{
		mustMatrix(t, [][]float64{{0, 0}, {0, 0}}),
		mustMatrix(t, [][]float64{{0}, {0}}),
	}}
	require.NoError(t, LoadFile(path, dst))
	for i := range src.matrixSet {
		assert.True(t, dst.matrixSet[i].Equal(src.matrixSet[i]))
	}

	fileSum, err := FileChecksum(path)
	require.NoError(t, err)
	memSum, err := Checksum(src)
	require.NoError(t, err)
	assert.Equal(t, memSum, fileSum)
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.bin")

	err := LoadFile(path, matrixStore{matrixSet{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "couldn't open")

	_, err = FileChecksum(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 12), 0o600))

	dst := matrixStore{matrixSet{mustMatrix(t, [][]float64{{1, 2}})}}
	err := LoadFile(path, dst)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSaveFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "params.bin")
	err := SaveFile(path, matrixSet{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't create")
}

func TestVerifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.bin")
	src := matrixSet{mustMatrix(t, [][]float64{{0.5, -0.5}})}
	require.NoError(t, SaveFile(path, src))

	want, err := Checksum(src)
	require.NoError(t, err)
	require.NoError(t, VerifyFile(path, want))

	other, err := Checksum(matrixSet{mustMatrix(t, [][]float64{{0.5, 0.5}})})
	require.NoError(t, err)
	err = VerifyFile(path, other)
	require.ErrorIs(t, err, ErrChecksumMismatch)
	assert.Contains(t, err.Error(), path)

	err = VerifyFile(filepath.Join(t.TempDir(), "missing.bin"), want)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
