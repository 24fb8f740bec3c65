package ordmap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMap2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := fill(t, 5, 3, 8, 1, 4, 7, 9)
	var b strings.Builder
	if err := Map2Dot(m, &b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a digraph:\n%s", dot)
	}
	if !strings.Contains(dot, `label="end"`) || !strings.Contains(dot, "shape=box") {
		t.Errorf("sentinel missing from DOT output")
	}
	if !strings.Contains(dot, "color=red") {
		t.Errorf("expected at least one red node")
	}
	// 7 elements + sentinel = 8 nodes, 9 nil leaves, 16 edges
	if n := strings.Count(dot, "->"); n != 16 {
		t.Errorf("expected 16 edges, got %d", n)
	}
	tmpfile := filepath.Join(t.TempDir(), "map.dot")
	if err := os.WriteFile(tmpfile, []byte(dot), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Logf("wrote digraph to %s", tmpfile)
}

func TestMap2DotIllegalArguments(t *testing.T) {
	if err := Map2Dot[int, int](nil, &strings.Builder{}); err != ErrIllegalArguments {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}
