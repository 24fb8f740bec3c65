package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/ordmap/metrics"
	"github.com/npillmayer/ordmap/render"
	"github.com/npillmayer/ordmap/skewheap"
	"github.com/npillmayer/ordmap/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/spf13/cobra"
)

// load reads a record file, reporting progress to the trace.
func (a *app) load(name string) (*ordmap.Map[string, string], textfile.Stats, int64, error) {
	l, err := textfile.Open(name, textfile.WithSeparator(a.cfg.Separator))
	if err != nil {
		return nil, textfile.Stats{}, 0, err
	}
	done := make(chan struct{})
	if ch, ok := l.Subscribe(context.Background(), 16); ok {
		go func() {
			defer close(done)
			for msg := range ch {
				if p, ok := msg.(textfile.Progress); ok {
					gtrace.CoreTracer.Debugf("%s: %s of %s, %d records", name,
						humanize.Bytes(uint64(p.Bytes)), humanize.Bytes(uint64(p.Size)), p.Records)
				}
			}
		}()
	} else {
		close(done)
	}
	m, stats, err := l.Load(context.Background())
	<-done // progress channel is closed when loading has finished
	if err != nil {
		return nil, stats, 0, err
	}
	gtrace.CoreTracer.Infof("loaded %s with %d records", name, m.Size())
	return m, stats, l.Size(), nil
}

func (a *app) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE",
		Short: "Load a record file and report its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, stats, size, err := a.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s: %s, %s lines, %s records, %s skipped, %s keys\n", args[0],
				humanize.Bytes(uint64(size)), humanize.Comma(int64(stats.Lines)),
				humanize.Comma(int64(stats.Records)), humanize.Comma(int64(stats.Skipped)),
				humanize.Comma(int64(m.Size())))
			return nil
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the map (list), its tree (tree), or a rendering of it (dot, html)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, _, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			switch format {
			case "list":
				for k, v := range m.All() {
					fmt.Fprintf(a.out, "%s%s%s\n", k, a.cfg.Separator, v)
				}
				return nil
			case "tree":
				c := render.NewConsole(nil)
				c.Colored = a.cfg.Color
				c.Width = a.cfg.Width
				if c.Width == 0 {
					c.Width = render.WidthFromTerminal()
				}
				_, err := render.Print(c, m.Shape(), a.out)
				return err
			case "dot":
				return ordmap.Map2Dot(m, a.out)
			case "html":
				return render.HTMLDocument(m.Shape(), args[0], a.out)
			}
			return fmt.Errorf("unknown format %q", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "list", "output format: list, tree, dot, html")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print shape metrics of the map's tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, _, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			s := metrics.Collect(m.Shape())
			fmt.Fprintf(a.out, "elements:      %s\n", humanize.Comma(int64(s.Elements)))
			fmt.Fprintf(a.out, "nodes:         %s\n", humanize.Comma(int64(s.Nodes)))
			fmt.Fprintf(a.out, "height:        %d\n", s.Height)
			fmt.Fprintf(a.out, "black height:  %d\n", s.BlackHeight)
			fmt.Fprintf(a.out, "red nodes:     %s\n", humanize.Comma(int64(s.RedNodes)))
			fmt.Fprintf(a.out, "average depth: %s\n", humanize.FormatFloat("#.##", s.AverageDepth))
			return nil
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE KEY...",
		Short: "Look up keys",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, _, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			c := m.Const()
			var missing []string
			for _, key := range args[1:] {
				v, err := c.Index(key)
				if errors.Is(err, ordmap.ErrKeyNotFound) {
					missing = append(missing, key)
					continue
				}
				fmt.Fprintf(a.out, "%s%s%s\n", key, a.cfg.Separator, v)
			}
			if len(missing) > 0 {
				return fmt.Errorf("%w: %s", ordmap.ErrKeyNotFound, strings.Join(missing, ", "))
			}
			return nil
		},
	}
}

func (a *app) topCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "top FILE",
		Short: "Print the records with the greatest values",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, _, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			h, err := skewheap.NewWithLess(func(x, y ordmap.Pair[string, string]) bool {
				return x.Second < y.Second || (x.Second == y.Second && x.First() > y.First())
			})
			if err != nil {
				return err
			}
			for k, v := range m.All() {
				h.Push(ordmap.MakePair(k, v))
			}
			for i := 0; i < n && !h.Empty(); i++ {
				p, _ := h.Top()
				fmt.Fprintf(a.out, "%s%s%s\n", p.First(), a.cfg.Separator, p.Second)
				h.Pop()
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "number", "n", 10, "number of records to print")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate the tree invariants of the loaded map",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, _, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := m.Check(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s: ok, black height %d\n", args[0], metrics.Collect(m.Shape()).BlackHeight)
			return nil
		},
	}
}
