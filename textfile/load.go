package textfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordmap"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// DefaultSeparator separates keys from values if no other separator is
// configured.
const DefaultSeparator = "="

// ErrNotRegular is returned when trying to load something other than a
// regular file.
var ErrNotRegular = errors.New("file is not a regular file")

// Progress is broadcast to subscribers whenever a fragment of the file has
// been processed.
type Progress struct {
	Bytes   int64 // bytes processed so far
	Size    int64 // size of the file
	Records int   // records applied so far
}

// Done reports whether the whole file has been processed.
func (p Progress) Done() bool {
	return p.Bytes >= p.Size
}

// Stats summarizes a completed load.
type Stats struct {
	Lines   int // lines read, including blank lines and comments
	Records int // records applied to the map
	Skipped int // non-blank lines without separator
}

// Loader loads a record file into an ordmap.Map.
type Loader struct {
	path      string
	info      os.FileInfo    // result from Stat(path)
	file      *os.File       // file handle
	sep       string         // key/value separator
	fragSize  int64          // size of fragments to read
	cast      *caster.Caster // broadcaster for progress messages
	lastError error          // remember last I/O error
}

// Option configures a Loader.
type Option func(*Loader)

// WithSeparator sets the key/value separator. An empty separator is ignored.
func WithSeparator(sep string) Option {
	return func(l *Loader) {
		if sep != "" {
			l.sep = sep
		}
	}
}

// WithFragmentSize sets the size of fragments read at a time. Values <= 0
// let the loader choose a size depending on the file size.
func WithFragmentSize(size int64) Option {
	return func(l *Loader) {
		l.fragSize = size
	}
}

// Open opens a record file for loading. Opening is always done
// synchronously.
func Open(name string, opts ...Option) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	l := &Loader{
		path: name,
		info: fi,
		file: file,
		sep:  DefaultSeparator,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}
	for _, opt := range opts {
		opt(l)
	}
	l.fragSize = fragmentSize(l.fragSize, fi.Size())
	return l, nil
}

// fragmentSize chooses a fragment size for a file of the given size.
func fragmentSize(requested, size int64) int64 {
	if requested > 0 && requested <= oneMb {
		return requested
	}
	switch {
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return twoKb
	default:
		return sixKb
	}
}

// Subscribe returns a channel receiving Progress messages. Subscriptions
// have to be made before calling Load. The channel is closed when loading
// has finished. Messages are dropped for subscribers which fall behind;
// loading never waits for a subscriber.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, capacity)
}

// Size returns the size of the file in bytes.
func (l *Loader) Size() int64 {
	return l.info.Size()
}

type fragment struct {
	data []byte
	end  int64 // file position after this fragment
}

// Load reads the file and returns a map of its records. It closes the file
// and the progress broadcaster. Load may be called only once.
//
// Reading is done by a separate goroutine, and progress is published by
// another one. Load waits for both before returning the map. If ctx is
// cancelled, Load stops reading and returns ctx.Err().
func (l *Loader) Load(ctx context.Context) (*ordmap.Map[string, string], Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	defer l.file.Close()
	frags := make(chan fragment, 4)
	progress := make(chan Progress, 4)
	published := make(chan struct{})
	go func(ch <-chan Progress) {
		// publish progress messages to all subscribers
		defer close(published)
		defer l.cast.Close()
		for p := range ch {
			l.cast.TryPub(p)
		}
	}(progress)
	go func(ch chan<- fragment) {
		// read the file fragment by fragment
		defer close(ch)
		size := l.info.Size()
		for pos := int64(0); pos < size; pos += l.fragSize {
			buf := make([]byte, min(l.fragSize, size-pos))
			cnt, err := l.file.ReadAt(buf, pos)
			if err != nil && err != io.EOF {
				l.lastError = fmt.Errorf("error loading fragment at %d: %w", pos, err)
				return
			} else if int64(cnt) < int64(len(buf)) {
				l.lastError = fmt.Errorf("not all bytes loaded for fragment at %d", pos)
				return
			}
			select {
			case ch <- fragment{data: buf, end: pos + int64(cnt)}:
			case <-ctx.Done():
				return
			}
		}
	}(frags)
	m := ordmap.New[string, string]()
	var stats Stats
	var partial []byte
feed:
	for frag := range frags {
		data := append(partial, frag.data...)
		last := bytes.LastIndexByte(data, '\n')
		if last < 0 {
			partial = data
		} else {
			for _, line := range strings.Split(string(data[:last]), "\n") {
				l.apply(m, line, &stats)
			}
			partial = append([]byte(nil), data[last+1:]...)
		}
		select {
		case progress <- Progress{Bytes: frag.end, Size: l.info.Size(), Records: stats.Records}:
		case <-ctx.Done():
			break feed
		}
	}
	for range frags {
		// reader stops at ctx.Done
	}
	if len(partial) > 0 && ctx.Err() == nil {
		l.apply(m, string(partial), &stats)
	}
	close(progress)
	<-published
	if l.lastError != nil {
		tracer().Errorf("loading %s: %s", l.path, l.lastError.Error())
		return nil, stats, l.lastError
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	tracer().Debugf("loaded %s: %d lines, %d records, %d skipped",
		l.path, stats.Lines, stats.Records, stats.Skipped)
	return m, stats, nil
}

func (l *Loader) apply(m *ordmap.Map[string, string], line string, stats *Stats) {
	stats.Lines++
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	key, value, ok := strings.Cut(line, l.sep)
	if !ok {
		tracer().Debugf("%s:%d: no separator %q, skipping line", l.path, stats.Lines, l.sep)
		stats.Skipped++
		return
	}
	m.Put(strings.TrimSpace(key), strings.TrimSpace(value))
	stats.Records++
}

// Load is a shortcut for opening and loading a record file with a given
// separator.
func Load(name string, sep string) (*ordmap.Map[string, string], error) {
	l, err := Open(name, WithSeparator(sep))
	if err != nil {
		return nil, err
	}
	m, _, err := l.Load(context.Background())
	return m, err
}
