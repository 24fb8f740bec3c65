package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/ordmap/rbtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

var setupGraphemes sync.Once

// Console draws trees sideways to a console with a fixed width font: the
// root is at the left margin, right subtrees are above, left subtrees below
// their parent.
//
// Labels are shortened to fit into Width character positions (measured in
// “en”s, according to Context). Width 0 means no limit.
type Console struct {
	Width   int
	Context *uax11.Context
	Colored bool
	Values  bool // print values in addition to keys
	colors  map[rbtree.Color]*color.Color
	end     *color.Color
}

// NewConsole creates a console renderer. colors maps node colors to display
// colors; it may be nil, in which case a default palette is used.
func NewConsole(colors map[rbtree.Color]*color.Color) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	c := &Console{
		Context: uax11.ContextFromEnvironment(),
		Colored: !color.NoColor,
		colors:  colors,
		end:     color.New(color.FgCyan, color.Bold),
	}
	if c.colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[rbtree.Color]*color.Color {
	palette := map[rbtree.Color]*color.Color{
		rbtree.Red:   color.New(color.FgRed, color.Bold),
		rbtree.Black: color.New(color.FgHiBlack),
	}
	return palette
}

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// Print draws the tree s to w and returns its height.
func Print[K, V any](c *Console, s *rbtree.Shape[K, V], w io.Writer) (int, error) {
	if c == nil || w == nil {
		return 0, ordmap.ErrIllegalArguments
	}
	if s == nil {
		return 0, nil
	}
	ctx := c.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	p := printer[K, V]{console: c, ctx: ctx, w: w}
	h := p.print(s, "", root)
	return h, p.err
}

type printer[K, V any] struct {
	console *Console
	ctx     *uax11.Context
	w       io.Writer
	err     error
}

// print returns the height of the subtree at s.
func (p *printer[K, V]) print(s *rbtree.Shape[K, V], prefix string, br branch) int {
	if s == nil {
		return 0
	}
	rh, lh := 0, 0
	if s.Right != nil {
		t := "       "
		if br == left {
			t = "│      "
		}
		rh = p.print(s.Right, prefix+t, right)
	}
	var edge string
	switch br {
	case root:
		edge = "───────"
	case left:
		edge = "└──────"
	case right:
		edge = "┌──────"
	}
	p.write(prefix + edge + " ")
	avail := 0
	if p.console.Width > 0 {
		avail = max(p.console.Width-p.width(prefix+edge+" "), 1)
	}
	p.label(s, avail)
	p.write("\n")
	if s.Left != nil {
		t := "       "
		if br == right {
			t = "│      "
		}
		lh = p.print(s.Left, prefix+t, left)
	}
	return 1 + max(lh, rh)
}

func (p *printer[K, V]) label(s *rbtree.Shape[K, V], avail int) {
	var text string
	switch {
	case s.Sentinel:
		text = "end"
	case p.console.Values:
		text = fmt.Sprintf("%v → %v #%d", s.Key, s.Value, s.Size)
	default:
		text = fmt.Sprintf("%v #%d", s.Key, s.Size)
	}
	if avail > 0 {
		text = p.shorten(text, avail)
	}
	if !p.console.Colored {
		p.write(text)
		return
	}
	c := p.console.colors[s.Color]
	if s.Sentinel {
		c = p.console.end
	}
	if c == nil {
		p.write(text)
		return
	}
	if p.err == nil {
		_, p.err = c.Fprint(p.w, text)
	}
}

// shorten cuts s to at most avail positions, marking the cut with an
// ellipsis.
func (p *printer[K, V]) shorten(s string, avail int) string {
	if p.width(s) <= avail {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && p.width(string(runes))+1 > avail {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func (p *printer[K, V]) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.ctx)
}

func (p *printer[K, V]) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// String draws the tree s without colors and without a width limit.
func String[K, V any](s *rbtree.Shape[K, V]) string {
	var b strings.Builder
	c := NewConsole(nil)
	c.Colored, c.Width = false, 0
	Print(c, s, &b)
	return b.String()
}

// --- Terminal --------------------------------------------------------------

// WidthFromTerminal checks wether stdout is a terminal, and if so it reads
// the terminal's width and derives a line width for drawing trees.
func WidthFromTerminal() int {
	width := 65
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			if w > 65 {
				width = w - 10
			} else if w > 30 {
				width = w - 5
			} else if w > 10 {
				width = w
			} else {
				width = 10
			}
		}
	}
	tracer().P("render", "console").Infof("setting line length to %d en", width)
	return width
}
