package textfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const records = `# capitals
france = paris
germany=berlin
italy = rome
this line has no separator

spain = madrid
germany = bonn
austria = vienna`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "records.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	for _, fragSize := range []int64{1, 7, 64, 0} {
		l, err := Open(writeFile(t, records), WithFragmentSize(fragSize))
		if err != nil {
			t.Fatal(err)
		}
		m, stats, err := l.Load(context.Background())
		if err != nil {
			t.Fatalf("fragment size %d: %v", fragSize, err)
		}
		if m.Size() != 5 {
			t.Fatalf("fragment size %d: expected 5 records, got %v", fragSize, m)
		}
		if v, _ := m.At("germany"); v != "bonn" {
			t.Errorf("fragment size %d: last record must win, germany=%q", fragSize, v)
		}
		if v, _ := m.At("austria"); v != "vienna" {
			t.Errorf("fragment size %d: record without trailing newline lost", fragSize)
		}
		if stats.Lines != 9 || stats.Records != 6 || stats.Skipped != 1 {
			t.Errorf("fragment size %d: unexpected stats %+v", fragSize, stats)
		}
		if err := m.Check(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadSeparator(t *testing.T) {
	m, err := Load(writeFile(t, "b: 2\na: 1\nc: x=y\n"), ":")
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "map[a:1 b:2 c:x=y]" {
		t.Fatalf("unexpected map %s", m)
	}
}

func TestLoadProgress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	l, err := Open(writeFile(t, records), WithFragmentSize(16))
	if err != nil {
		t.Fatal(err)
	}
	ch, ok := l.Subscribe(context.Background(), 64)
	if !ok {
		t.Fatal("cannot subscribe to progress")
	}
	received := make(chan []Progress)
	go func() {
		var msgs []Progress
		for msg := range ch {
			msgs = append(msgs, msg.(Progress))
		}
		received <- msgs
	}()
	if _, _, err := l.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	select {
	case msgs := <-received:
		var last int64
		for _, p := range msgs {
			if p.Bytes < last || p.Size != l.Size() {
				t.Fatalf("progress not monotonic: %+v", msgs)
			}
			last = p.Bytes
		}
		t.Logf("received %d progress messages", len(msgs))
	case <-time.After(5 * time.Second):
		t.Fatal("progress channel not closed after loading")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Open(t.TempDir()); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for a directory, got %v", err)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	m, err := Load(writeFile(t, ""), "")
	if err != nil || !m.Empty() {
		t.Errorf("empty file must load as empty map, got %v, %v", m, err)
	}
}

func TestFragmentSize(t *testing.T) {
	if fragmentSize(100, 1<<30) != 100 {
		t.Errorf("requested fragment size not honoured")
	}
	if fragmentSize(0, 10) != 64 || fragmentSize(0, 1<<30) != sixKb {
		t.Errorf("unexpected default fragment sizes")
	}
}

func manyRecords(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := range n {
		fmt.Fprintf(&b, "k%d=v%d\n", i, i)
	}
	return writeFile(t, b.String())
}

// loadWithIdleSubscriber loads name while a subscriber never reads its
// progress channel. It fails the test if Load does not return in time.
func loadWithIdleSubscriber(t *testing.T, ctx context.Context, name string) (int, error) {
	t.Helper()
	l, err := Open(name, WithFragmentSize(64))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l.Subscribe(context.Background(), 1); !ok {
		t.Fatal("cannot subscribe to progress")
	}
	type result struct {
		size int
		err  error
	}
	done := make(chan result, 1)
	go func() {
		m, _, err := l.Load(ctx)
		if m == nil {
			done <- result{0, err}
			return
		}
		done <- result{m.Size(), err}
	}()
	select {
	case r := <-done:
		return r.size, r.err
	case <-time.After(10 * time.Second):
		t.Fatal("Load does not return while a subscriber is idle")
	}
	return 0, nil
}

func TestLoadIdleSubscriber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	size, err := loadWithIdleSubscriber(t, context.Background(), manyRecords(t, 50000))
	if err != nil {
		t.Fatal(err)
	}
	if size != 50000 {
		t.Fatalf("expected 50000 records, got %d", size)
	}
}

func TestLoadCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	name := manyRecords(t, 50000)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)
	defer cancel()
	size, err := loadWithIdleSubscriber(t, ctx, name)
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("expected nil or context.Canceled, got %v", err)
	}
	if err == nil && size != 50000 {
		t.Fatalf("load finished before cancellation with %d records", size)
	}

	cancelled, stop := context.WithCancel(context.Background())
	stop()
	if _, err := loadWithIdleSubscriber(t, cancelled, name); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled for a cancelled context, got %v", err)
	}
}
