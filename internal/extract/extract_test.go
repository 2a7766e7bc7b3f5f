package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeDocx(t *testing.T, dir, name, documentXML string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	writer := zip.NewWriter(file)
	entry, err := writer.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return path
}

const sampleDocumentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "  hello there  \n")
	got, err := Text{}.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)
}

func TestCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "table.csv", "name,age\nalice,30\n\nbob,25\n")
	got, err := CSV{}.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "name\tage\nalice\t30\nbob\t25", got)
}

func TestJSON(t *testing.T) {
	dir := t.TempDir()

	t.Run("pretty prints with unicode intact", func(t *testing.T) {
		path := writeFile(t, dir, "data.json", `{"name":"Hà Nội","n":1}`)
		got, err := JSON{}.Extract(path)
		require.NoError(t, err)
		assert.Contains(t, got, "\"name\": \"Hà Nội\"")
		assert.Contains(t, got, "\"n\": 1")
	})

	t.Run("invalid json is an error", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", "{not json")
		_, err := JSON{}.Extract(path)
		assert.Error(t, err)
	})
}

func TestHTML(t *testing.T) {
	dir := t.TempDir()
	page := `<html><head><title>T</title><style>p{color:red}</style></head>
<body><script>var x = 1;</script><h1>Heading</h1><p>Body text.</p></body></html>`
	path := writeFile(t, dir, "page.html", page)
	got, err := HTML{}.Extract(path)
	require.NoError(t, err)
	assert.Contains(t, got, "Heading")
	assert.Contains(t, got, "Body text.")
	assert.NotContains(t, got, "var x")
	assert.NotContains(t, got, "color:red")
}

func TestMarkdown(t *testing.T) {
	dir := t.TempDir()
	md := "# Title\n\nSome *emphasized* text with a [link](https://example.com).\n\n- item one\n- item two\n\n```\ncode block\n```\n"
	path := writeFile(t, dir, "doc.md", md)
	got, err := Markdown{}.Extract(path)
	require.NoError(t, err)
	assert.Contains(t, got, "Title")
	assert.Contains(t, got, "Some emphasized text with a link.")
	assert.Contains(t, got, "item one")
	assert.NotContains(t, got, "code block")
	assert.NotContains(t, got, "https://example.com")
}

func TestXML(t *testing.T) {
	dir := t.TempDir()
	doc := `<root><a>first</a>tail text<b><c>nested</c></b></root>`
	path := writeFile(t, dir, "doc.xml", doc)
	got, err := XML{}.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "first\ntail text\nnested", got)
}

func TestDocx(t *testing.T) {
	dir := t.TempDir()

	t.Run("extracts paragraphs", func(t *testing.T) {
		path := writeDocx(t, dir, "doc.docx", sampleDocumentXML)
		got, err := Docx{}.Extract(path)
		require.NoError(t, err)
		assert.Equal(t, "First paragraph.\nSecond paragraph.", got)
	})

	t.Run("not a zip is an error", func(t *testing.T) {
		path := writeFile(t, dir, "bad.docx", "plain text, not a zip")
		_, err := Docx{}.Extract(path)
		assert.Error(t, err)
	})
}

func TestLoadDocuments(t *testing.T) {
	t.Run("lexical order and ids", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "b.txt", "Second file.")
		writeFile(t, dir, "a.txt", "First file.")
		writeFile(t, dir, "ignored.bin", "skip me")

		docs, failures, err := LoadDocuments(dir, DefaultRegistry())
		require.NoError(t, err)
		assert.Empty(t, failures)
		require.Len(t, docs, 2)
		assert.Equal(t, "a", docs[0].ID)
		assert.Equal(t, "b", docs[1].ID)
		assert.Equal(t, "First file.", docs[0].Text)
		assert.Equal(t, filepath.Join(dir, "a.txt"), docs[0].Source)
	})

	t.Run("failures are isolated", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "good.txt", "Fine.")
		writeFile(t, dir, "broken.docx", "not a zip archive")

		docs, failures, err := LoadDocuments(dir, DefaultRegistry())
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "good", docs[0].ID)
		require.Len(t, failures, 1)
		assert.Contains(t, failures[0].Path, "broken.docx")
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "x.txt", "One. Two.")
		writeFile(t, dir, "y.txt", "Three.")

		first, _, err := LoadDocuments(dir, DefaultRegistry())
		require.NoError(t, err)
		second, _, err := LoadDocuments(dir, DefaultRegistry())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
