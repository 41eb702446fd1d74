package aggregator

import (
	"fmt"
	"testing"

	"github.com/mpage/cpython-tsan-races/pkg/parser"
)

func event(fn, file string, line int, test, example string) *parser.RaceEvent {
	return &parser.RaceEvent{
		Loc:     &parser.Location{Func: fn, File: file, Line: line},
		Example: example,
		Test:    test,
	}
}

func TestIngest_CreatesAndMerges(t *testing.T) {
	a := New()
	a.Ingest(event("func1", "file1.c", 10, "test_threading", "block one"))
	a.Ingest(event("func1", "file1.c", 10, "test_asyncio", "block two"))
	a.Ingest(event("func2", "file2.c", 20, "test_threading", "block three"))

	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}

	snap := a.Snapshot()
	rec := snap[0]
	if rec.Loc.Func != "func1" {
		t.Fatalf("most frequent record = %v, want func1", rec.Loc)
	}
	if rec.Count() != 2 {
		t.Errorf("Count() = %d, want 2", rec.Count())
	}
	if rec.Examples[0] != "block one" || rec.Examples[1] != "block two" {
		t.Errorf("Examples = %v, want input order preserved", rec.Examples)
	}
	got := rec.SortedTests()
	if len(got) != 2 || got[0] != "test_asyncio" || got[1] != "test_threading" {
		t.Errorf("SortedTests() = %v", got)
	}
}

func TestIngest_IdenticalBlocksNotDeduplicated(t *testing.T) {
	a := New()
	for i := 0; i < 3; i++ {
		a.Ingest(event("func1", "file1.c", 10, "test_gc", "same text"))
	}

	snap := a.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("got %d records, want 1", len(snap))
	}
	if snap[0].Count() != 3 {
		t.Errorf("Count() = %d, want 3 (examples are per-occurrence)", snap[0].Count())
	}
	if len(snap[0].Tests) != 1 {
		t.Errorf("Tests = %v, want deduplicated single entry", snap[0].Tests)
	}
}

func TestIngest_EmptyTestNameIgnored(t *testing.T) {
	a := New()
	a.Ingest(event("func1", "file1.c", 10, "", "block"))

	snap := a.Snapshot()
	if len(snap[0].Tests) != 0 {
		t.Errorf("Tests = %v, want empty set", snap[0].Tests)
	}
	if snap[0].Count() != 1 {
		t.Errorf("Count() = %d, want 1", snap[0].Count())
	}
}

func TestIngest_UnknownLocationGroupsTogether(t *testing.T) {
	a := New()
	a.Ingest(&parser.RaceEvent{Loc: nil, Example: "first", Test: "test_a"})
	a.Ingest(&parser.RaceEvent{Loc: nil, Example: "second", Test: "test_b"})

	if a.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (absent keys aggregate together)", a.Len())
	}
	rec := a.Snapshot()[0]
	if rec.Loc != nil {
		t.Errorf("Loc = %v, want nil", rec.Loc)
	}
	if rec.ID() != "" {
		t.Errorf("ID() = %q, want empty for unknown group", rec.ID())
	}
	if rec.Count() != 2 || len(rec.Tests) != 2 {
		t.Errorf("Count() = %d, Tests = %v", rec.Count(), rec.Tests)
	}
}

func TestSnapshot_SortedByDescendingCount(t *testing.T) {
	a := New()
	for i := 0; i < 3; i++ {
		a.Ingest(event("frequent", "a.c", 1, "test_a", fmt.Sprintf("f%d", i)))
	}
	a.Ingest(event("rare", "b.c", 2, "test_b", "r0"))
	a.Ingest(event("middling", "c.c", 3, "test_c", "m0"))
	a.Ingest(event("middling", "c.c", 3, "test_c", "m1"))

	snap := a.Snapshot()
	for i := 1; i < len(snap); i++ {
		if snap[i-1].Count() < snap[i].Count() {
			t.Errorf("snapshot[%d].Count()=%d < snapshot[%d].Count()=%d",
				i-1, snap[i-1].Count(), i, snap[i].Count())
		}
	}
	if snap[0].Loc.Func != "frequent" || snap[2].Loc.Func != "rare" {
		t.Errorf("order = %s, %s, %s", snap[0].Loc.Func, snap[1].Loc.Func, snap[2].Loc.Func)
	}
}

func TestSnapshot_TiesOrderedByID(t *testing.T) {
	a := New()
	a.Ingest(event("zeta", "z.c", 9, "test_a", "x"))
	a.Ingest(event("alpha", "a.c", 1, "test_a", "x"))

	snap := a.Snapshot()
	if snap[0].Loc.Func != "alpha" || snap[1].Loc.Func != "zeta" {
		t.Errorf("tie order = %s, %s; want alpha, zeta", snap[0].Loc.Func, snap[1].Loc.Func)
	}
}

func TestIngest_OrderIndependentAcrossDistinctBlocks(t *testing.T) {
	evs := []*parser.RaceEvent{
		event("func1", "a.c", 1, "test_a", "ex-a"),
		event("func2", "b.c", 2, "test_b", "ex-b"),
	}

	forward := New()
	forward.Ingest(evs[0])
	forward.Ingest(evs[1])

	reversed := New()
	reversed.Ingest(evs[1])
	reversed.Ingest(evs[0])

	fs, rs := forward.Snapshot(), reversed.Snapshot()
	if len(fs) != len(rs) {
		t.Fatalf("snapshot sizes differ: %d vs %d", len(fs), len(rs))
	}
	for i := range fs {
		if fs[i].ID() != rs[i].ID() || fs[i].Count() != rs[i].Count() {
			t.Errorf("snapshot[%d] differs: %s/%d vs %s/%d",
				i, fs[i].ID(), fs[i].Count(), rs[i].ID(), rs[i].Count())
		}
	}
}
