package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"markview/internal/domain"
)

func TestParseCountsLines(t *testing.T) {
	doc := Parse("one\ntwo\nthree")
	require.Equal(t, 3, doc.LineCount)
}

func TestParseTrailingNewline(t *testing.T) {
	doc := Parse("one\ntwo\n")
	require.Equal(t, 2, doc.LineCount, "A trailing newline does not start another line")
}

func TestParseEmpty(t *testing.T) {
	doc := Parse("")
	require.Equal(t, 1, doc.LineCount)
	require.Empty(t, doc.Headings)
}

func TestParseExtractsHeadings(t *testing.T) {
	text := "# Title\n\n## Section One\ntext\n### Sub\n#### Deep\n##### Deeper\n"
	doc := Parse(text)

	require.Equal(t, []domain.Heading{
		{Level: 1, Title: "Title", Line: 0},
		{Level: 2, Title: "Section One", Line: 2},
		{Level: 3, Title: "Sub", Line: 4},
		{Level: 4, Title: "Deep", Line: 5},
		{Level: 5, Title: "Deeper", Line: 6},
	}, doc.Headings)
}

func TestParseIgnoresHeadingsInCodeFences(t *testing.T) {
	text := "## Real\n```\n# not a heading\n```\n~~~\n## also not\n~~~\n## Real Again\n"
	doc := Parse(text)

	require.Len(t, doc.Headings, 2)
	require.Equal(t, "Real", doc.Headings[0].Title)
	require.Equal(t, "Real Again", doc.Headings[1].Title)
}

func TestParseRejectsNonHeadings(t *testing.T) {
	doc := Parse("#not-a-heading\n####### too many\n#\n")

	require.Len(t, doc.Headings, 1)
	require.Equal(t, domain.Heading{Level: 1, Title: "", Line: 2}, doc.Headings[0], "A bare # is a heading with an empty title")
}

func TestParseStripsClosingHashes(t *testing.T) {
	doc := Parse("## Section ##\n")
	require.Equal(t, "Section", doc.Headings[0].Title)
}

func TestParseIndentedHeading(t *testing.T) {
	doc := Parse("   ## Indented\n")
	require.Len(t, doc.Headings, 1)
	require.Equal(t, "Indented", doc.Headings[0].Title)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hello\n\nworld\n"), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, doc.Path)
	require.Equal(t, 3, doc.LineCount)
	require.Len(t, doc.Headings, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
}
