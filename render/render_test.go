package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func sample(t *testing.T) *ordmap.Map[int, string] {
	t.Helper()
	m := ordmap.New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		m.Put(k, strings.Repeat("x", k))
	}
	require.NoError(t, m.Check())
	return m
}

func TestConsolePlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := sample(t)
	c := NewConsole(nil)
	c.Colored = false
	var b bytes.Buffer
	h, err := Print(c, m.Shape(), &b)
	require.NoError(t, err)
	assert.Equal(t, m.Shape().Height(), h)
	t.Logf("\n%s", b.String())
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	assert.Len(t, lines, m.Size()+1, "one line per node including the sentinel")
	// right subtrees are drawn above, so keys appear in descending order
	assert.Contains(t, lines[0], "end")
	assert.Contains(t, lines[len(lines)-1], "1 #1")
	assert.NotContains(t, b.String(), "\x1b[", "plain output must not contain escape codes")
}

func TestConsoleColored(t *testing.T) {
	m := sample(t)
	c := NewConsole(nil)
	c.Colored = true
	c.Values = true
	var b bytes.Buffer
	_, err := Print(c, m.Shape(), &b)
	require.NoError(t, err)
	assert.Contains(t, b.String(), "5 → xxxxx")
}

func TestConsoleWidth(t *testing.T) {
	m := ordmap.New[string, int]()
	m.Put(strings.Repeat("long-key-", 10), 1)
	c := NewConsole(nil)
	c.Colored, c.Width = false, 30
	var b bytes.Buffer
	_, err := Print(c, m.Shape(), &b)
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 30, "line too long: %q", line)
	}
	assert.Contains(t, b.String(), "…")
}

func TestConsoleIllegalArguments(t *testing.T) {
	_, err := Print[int, int](nil, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ordmap.ErrIllegalArguments)
	assert.ErrorIs(t, HTML(ordmap.New[int, int]().Shape(), nil), ordmap.ErrIllegalArguments)
	assert.ErrorIs(t, HTMLDocument(ordmap.New[int, int]().Shape(), "", nil), ordmap.ErrIllegalArguments)
	h, err := Print[int, int](NewConsole(nil), nil, &bytes.Buffer{})
	assert.NoError(t, err)
	assert.Equal(t, 0, h)
}

func TestString(t *testing.T) {
	s := String(ordmap.New[int, int]().Shape())
	assert.Equal(t, "─────── end\n", s)
}

func TestHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := sample(t)
	var b bytes.Buffer
	require.NoError(t, HTML(m.Shape(), &b))
	nodes, err := html.ParseFragment(&b, nil)
	require.NoError(t, err)
	counts := map[string]int{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			for _, a := range n.Attr {
				if a.Key == "class" {
					counts[a.Val]++
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	t.Logf("classes: %v", counts)
	assert.Equal(t, 1, counts["end"])
	assert.Equal(t, m.Size(), counts["red"]+counts["black"])
	assert.Positive(t, counts["nil"])
}

func TestHTMLDocument(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, HTMLDocument(sample(t).Shape(), "a <map>", &b))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>a &lt;map&gt;</title>")
	assert.Contains(t, out, `class="rbtree"`)
}
