package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewTruncatesLongText(t *testing.T) {
	post := Post{Text: strings.Repeat("a", 40)}
	assert.Equal(t, strings.Repeat("a", 15), post.Preview())
}

func TestPreviewKeepsShortText(t *testing.T) {
	post := Post{Text: "short text"}
	assert.Equal(t, "short text", post.Preview())
}

func TestPreviewCountsRunesNotBytes(t *testing.T) {
	post := Post{Text: "тестовый пост про группы"}
	assert.Equal(t, "тестовый пост п", post.Preview())
}

func TestSafeTextEscapesPlainTextOnce(t *testing.T) {
	post := Post{Text: "1 < 2 & true"}
	assert.Equal(t, "1 &lt; 2 &amp; true", string(post.SafeText()))
}

func TestSafeTextStripsScripts(t *testing.T) {
	post := Post{Text: `hello <script>alert(1)</script>world`}
	safe := string(post.SafeText())
	assert.NotContains(t, safe, "<script>")
	assert.NotContains(t, safe, "alert(1)")
	assert.Contains(t, safe, "hello")
}
