package artifact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPage(t *testing.T) {
	page := BuildPage("T", []string{"<h1>A</h1>", "<p>B</p>"})

	assert.Contains(t, page, "<title>T</title>")
	assert.Contains(t, page, "<h1>A</h1>")
	assert.Contains(t, page, "<p>B</p>")
	assert.Less(t, strings.Index(page, "<h1>A</h1>"), strings.Index(page, "<p>B</p>"),
		"fragments appear in the given order")
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
}

func TestBuildPage_NoEscaping(t *testing.T) {
	// Fragments are caller-trusted and must pass through verbatim.
	page := BuildPage("T", []string{`<img src="a.jpg" onload="x()">`})
	assert.Contains(t, page, `<img src="a.jpg" onload="x()">`)
	assert.NotContains(t, page, "&lt;")
}

func TestBuildPage_TitleVerbatim(t *testing.T) {
	page := BuildPage("Tour & Guide", nil)
	assert.Contains(t, page, "<title>Tour & Guide</title>")
}
