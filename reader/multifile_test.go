package reader

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMultipleFiles_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.csv", "brand,price\nA,100\n")

	got, err := ReadMultipleFiles(path, DefaultOptions())
	require.NoError(t, err)

	// No _file column for plain paths
	assert.Equal(t, []string{"brand", "price"}, got.Columns)
	_, tagged := got.Rows[0][FileColumn]
	assert.False(t, tagged)
}

func TestReadMultipleFiles_LiteralBracketPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data[1].csv", "a,b\n1,2\n")

	got, err := ReadMultipleFiles(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, got.Columns)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "1", got.Rows[0]["a"])
	_, tagged := got.Rows[0][FileColumn]
	assert.False(t, tagged)
}

func TestReadMultipleFiles_Glob(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "brand,price\nA,100\nB,200\n")
	b := writeFile(t, dir, "b.csv", "brand,price,rating\nC,300,4.5\n")
	writeFile(t, dir, "notes.txt", "ignored\n")

	got, err := ReadMultipleFiles(filepath.Join(dir, "*.csv"), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"brand", "price", "rating", FileColumn}, got.Columns)
	require.Len(t, got.Rows, 3)
	assert.Equal(t, a, got.Rows[0][FileColumn])
	assert.Equal(t, a, got.Rows[1][FileColumn])
	assert.Equal(t, b, got.Rows[2][FileColumn])

	// Rows from the narrower file are padded
	assert.Equal(t, "", got.Rows[0]["rating"])
	assert.Equal(t, "4.5", got.Rows[2]["rating"])
}

func TestReadMultipleFiles_MixedFormats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.csv", "brand,price\nA,100\n")
	createParquetFile(t, dir, "2.parquet", []ProductRow{{Brand: "B", Price: 200}})

	got, err := ReadMultipleFiles(filepath.Join(dir, "[12].*"), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "A", got.Rows[0]["brand"])
	assert.Equal(t, "B", got.Rows[1]["brand"])
	assert.Equal(t, "200", got.Rows[1]["price"])
}

func TestReadMultipleFiles_NoMatches(t *testing.T) {
	_, err := ReadMultipleFiles(filepath.Join(t.TempDir(), "*.csv"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInput))
	assert.Contains(t, err.Error(), "no files match pattern")
}

func TestReadMultipleFiles_BadPattern(t *testing.T) {
	_, err := ReadMultipleFiles("[", DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInput))
}

func TestReadMultipleFiles_OneBadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "brand,price\nA,100\n")
	writeFile(t, dir, "b.csv", "brand,price\nA,100,extra\n")

	_, err := ReadMultipleFiles(filepath.Join(dir, "*.csv"), DefaultOptions())
	require.Error(t, err)

	var ie *InputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, filepath.Join(dir, "b.csv"), ie.Path)
}
