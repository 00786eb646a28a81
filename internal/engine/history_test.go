package engine_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/meditriage/meditriage/internal/engine"
)

func classifyOrFail(t *testing.T, in engine.Input) engine.Result {
	t.Helper()
	res, err := engine.Classify(in)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	return *res
}

func TestHistoryCapacityAndOrder(t *testing.T) {
	h := engine.NewHistory()

	for i := 1; i <= 6; i++ {
		in := engine.Input{
			Narrative: fmt.Sprintf("notification %d", i),
			Source:    engine.SourceColleague,
		}
		h.Record(in, classifyOrFail(t, in))
	}

	recent := h.Recent()
	if len(recent) != engine.HistoryCapacity {
		t.Fatalf("recent length = %d, want %d", len(recent), engine.HistoryCapacity)
	}

	// Most recent first; the very first entry was evicted.
	for i, entry := range recent {
		want := fmt.Sprintf("notification %d", 6-i)
		if entry.Summary != want {
			t.Errorf("recent[%d].Summary = %q, want %q", i, entry.Summary, want)
		}
	}
}

func TestHistoryTruncatesNarrative(t *testing.T) {
	h := engine.NewHistory()

	long := strings.Repeat("a", 200)
	in := engine.Input{Narrative: long, Source: engine.SourceSelf}
	h.Record(in, classifyOrFail(t, in))

	recent := h.Recent()
	if len(recent) != 1 {
		t.Fatalf("recent length = %d, want 1", len(recent))
	}
	if got := len([]rune(recent[0].Summary)); got != 80 {
		t.Errorf("summary length = %d, want 80", got)
	}
	if recent[0].Source != engine.SourceSelf {
		t.Errorf("source = %q, want %q", recent[0].Source, engine.SourceSelf)
	}
}

func TestHistoryRecentReturnsCopy(t *testing.T) {
	h := engine.NewHistory()

	in := engine.Input{Narrative: "first", Source: engine.SourceColleague}
	h.Record(in, classifyOrFail(t, in))

	snapshot := h.Recent()
	snapshot[0].Summary = "mutated"

	if h.Recent()[0].Summary != "first" {
		t.Error("Recent must return a copy, not the backing slice")
	}
}

func TestHistoryUnchangedByRejectedNarrative(t *testing.T) {
	h := engine.NewHistory()

	seeded := engine.Input{Narrative: "initial entry", Source: engine.SourceColleague}
	h.Record(seeded, classifyOrFail(t, seeded))

	// Mirrors the submission flow: a record lands only after a successful
	// classification.
	submit := func(in engine.Input) error {
		res, err := engine.Classify(in)
		if err != nil {
			return err
		}
		h.Record(in, *res)
		return nil
	}

	for _, narrative := range []string{"", "   ", "\t\n"} {
		err := submit(engine.Input{Narrative: narrative, Source: engine.SourcePatient})
		if !errors.Is(err, engine.ErrBlankNarrative) {
			t.Fatalf("narrative %q: err = %v, want ErrBlankNarrative", narrative, err)
		}
	}

	recent := h.Recent()
	if len(recent) != 1 {
		t.Fatalf("recent length = %d, want 1", len(recent))
	}
	if recent[0].Summary != "initial entry" {
		t.Errorf("recent[0].Summary = %q, want %q", recent[0].Summary, "initial entry")
	}
}

func TestHistoryConcurrentWriters(t *testing.T) {
	h := engine.NewHistory()
	res := classifyOrFail(t, engine.Input{Narrative: "concurrent", Source: engine.SourceEmployer})

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Go(func() {
			h.Record(engine.Input{
				Narrative: fmt.Sprintf("entry %d", i),
				Source:    engine.SourceEmployer,
			}, res)
		})
	}
	wg.Wait()

	if got := len(h.Recent()); got != engine.HistoryCapacity {
		t.Errorf("recent length = %d, want %d", got, engine.HistoryCapacity)
	}
}
