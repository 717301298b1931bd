package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(b)
}

func TestWriteTextRecordContainsTitleAndBody(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, "out.txt", FormatText, 0)

	text := "Body text.\n"
	require.NoError(t, w.Write(Record{Title: "Example", Text: &text, Categories: []string{"Cat A", "Cat B"}}))
	require.NoError(t, w.Close())

	content := readFile(t, filepath.Join(dir, "out.txt"))
	assert.Contains(t, content, "[[Example]]")
	assert.Contains(t, content, "Body text.")
	assert.Contains(t, content, "CATEGORIES: Cat A, Cat B")
}

func TestWriteJSONLRecordIsOneLinePerArticle(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, "out.jsonl", FormatJSONL, 0)

	text := "Body."
	require.NoError(t, w.Write(Record{Title: "One", Text: &text}))
	require.NoError(t, w.Write(Record{Title: "Two", Text: &text}))
	require.NoError(t, w.Close())

	content := readFile(t, filepath.Join(dir, "out.jsonl"))
	assert.Contains(t, content, `"title":"One"`)
	assert.Contains(t, content, `"title":"Two"`)
}

func TestCloseRemovesZeroLengthFinalFile(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, "empty.txt", FormatText, 0)
	require.NoError(t, w.ensureOpen())
	require.NoError(t, w.Close())

	_, err := os.Stat(filepath.Join(dir, "empty.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRotationUsesNumberedFileNamesWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, "rot", FormatText, 1)
	text := "x"
	require.NoError(t, w.Write(Record{Title: "A", Text: &text}))
	require.NoError(t, w.Close())

	_, err := os.Stat(filepath.Join(dir, "rot-000"))
	assert.NoError(t, err)
}

func TestMaybeRotateAdvancesFileIndexPastThreshold(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, "rot", FormatText, 1)
	require.NoError(t, w.ensureOpen())
	w.currentSize = int64(w.rotateSizeMB)*1024*1024 + 1
	require.NoError(t, w.maybeRotate())
	assert.Equal(t, 1, w.fileIndex)

	require.NoError(t, w.Close())
	_, err := os.Stat(filepath.Join(dir, "rot-000"))
	assert.NoError(t, err)
}

func TestWriteFromFileCopiesEveryLine(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("line one\nline two\n\nline three\n"), 0o644))

	w := New(dir, "combined", FormatText, 0)
	require.NoError(t, w.WriteFromFile(src))
	require.NoError(t, w.Close())

	content := readFile(t, filepath.Join(dir, "combined"))
	assert.Contains(t, content, "line one")
	assert.Contains(t, content, "line three")
}
