package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for p, c := range files {
		full := filepath.Join(dir, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(c), 0o644))
	}
	return dir
}

func TestConvertContent(t *testing.T) {
	in := `<table width=100%><tr><td>%playername%</td><td>%count%</td><td>%playername%</td></tr></table>`
	want := `<table width=100%><tr><td>{{index . "playername"}}</td><td>{{index . "count"}}</td><td>{{index . "playername"}}</td></tr></table>`

	got, count, vars := convertContent(in)
	assert.Equal(t, want, got)
	assert.Equal(t, 3, count)
	assert.Equal(t, map[string]int{"playername": 2, "count": 1}, vars)
}

func TestConvert_HtmAndHtml(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.htm":      `%name%`,
		"b/c.html":   `%schemes%`,
		"skip.txt":   `%name%`,
		"plain.html": `no vars`,
	})

	stats, err := convert(dir, false, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.scanned)
	assert.Equal(t, 2, stats.converted)
	assert.Equal(t, 2, stats.varsReplaced)

	raw, err := os.ReadFile(filepath.Join(dir, "b", "c.html"))
	require.NoError(t, err)
	assert.Equal(t, `{{index . "schemes"}}`, string(raw))

	raw, err = os.ReadFile(filepath.Join(dir, "skip.txt"))
	require.NoError(t, err)
	assert.Equal(t, `%name%`, string(raw), "non-template files stay untouched")
}

func TestConvert_DryRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.htm": `%name%`})

	var out bytes.Buffer
	stats, err := convert(dir, true, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.converted)
	assert.Contains(t, out.String(), "a.htm: 1 replacements")

	raw, err := os.ReadFile(filepath.Join(dir, "a.htm"))
	require.NoError(t, err)
	assert.Equal(t, `%name%`, string(raw))
}

func TestCheckDir(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			"CommunityBoard/Custom/home.html": `<html>{{index . "navigation"}}</html>`,
			"npcdefault.htm":                  `<table width=100%></table>`,
		})

		var out bytes.Buffer
		require.NoError(t, checkDir(dir, &out))
		assert.Contains(t, out.String(), "templates loaded: 2")
	})

	t.Run("legacy and broken", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			"old.htm":    `Hello, %playername%`,
			"broken.htm": `{{index . "name"`,
		})

		var out bytes.Buffer
		err := checkDir(dir, &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, errLegacyVars)
		assert.ErrorIs(t, err, errBrokenTemplate)
		assert.Contains(t, out.String(), "legacy old.htm")
		assert.Contains(t, out.String(), "broken broken.htm")
	})
}

func TestRun_CheckShippedTemplates(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-check", "-dir", filepath.Join("..", "..", "data", "html")}, &out)
	require.NoError(t, err, out.String())
}
