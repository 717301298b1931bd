package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohasebe/wp2txt-sub000/internal/config"
	"github.com/yohasebe/wp2txt-sub000/internal/output"
)

func TestProcessPageWritesTitleTextAndCategories(t *testing.T) {
	dir := t.TempDir()
	w := output.New(dir, "out.txt", output.FormatText, 0)
	defer w.Close()

	p := rawPage{
		Title: "Example",
		Text:  "Intro paragraph.\n\n[[Category:Examples]]\n",
	}
	cfg := config.Default()

	require.NoError(t, processPage(p, cfg, w))
	require.NoError(t, w.Close())

	content, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Example")
	assert.Contains(t, string(content), "Intro paragraph.")
	assert.Contains(t, string(content), "Examples")
}

func TestProcessPageOmitsCategoriesWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	w := output.New(dir, "out.jsonl", output.FormatJSONL, 0)
	defer w.Close()

	cfg := config.Default()
	cfg.KeepCategories = false
	p := rawPage{Title: "Example", Text: "Text.\n[[Category:Examples]]\n"}

	require.NoError(t, processPage(p, cfg, w))
	require.NoError(t, w.Close())

	content, err := os.ReadFile(filepath.Join(dir, "out.jsonl"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), `"categories"`)
}

func TestOpenPagesParsesPlainXMLDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.xml")
	xmlContent := `<mediawiki><page><title>Alpha</title><revision><text>alpha body</text></revision></page>` +
		`<page><title>Beta</title><revision><text>beta body</text></revision></page></mediawiki>`
	require.NoError(t, os.WriteFile(path, []byte(xmlContent), 0o644))

	pages, err := openPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "Alpha", pages[0].Title)
	assert.Equal(t, "beta body", pages[1].Text)
}

func TestOpenPagesErrorsOnMissingFile(t *testing.T) {
	_, err := openPages(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}
