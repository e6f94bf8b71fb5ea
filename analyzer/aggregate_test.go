package analyzer_test

import (
	"testing"

	"github.com/ZephyrDeng/flamescan/analyzer"
)

func testEntries() []analyzer.Entry {
	return []analyzer.Entry{
		{Name: "foo::bar::baz", Samples: 100, Percentage: 10.0},
		{Name: "foo::bar::qux", Samples: 50, Percentage: 5.0},
		{Name: "foo::other", Samples: 25, Percentage: 2.5},
		{Name: "main", Samples: 10, Percentage: 1.0},
	}
}

func TestGroupEntries(t *testing.T) {
	t.Run("ByFunction", func(t *testing.T) {
		groups := analyzer.GroupEntries(testEntries(), analyzer.GroupByFunction, false)
		if len(groups) != 4 {
			t.Fatalf("expected 4 groups, got %d", len(groups))
		}
		if g := groups["foo::bar::baz"]; g.TotalSamples != 100 || g.MaxPercentage != 10.0 {
			t.Errorf("unexpected aggregate for foo::bar::baz: %+v", g)
		}
	})

	t.Run("ByModule", func(t *testing.T) {
		groups := analyzer.GroupEntries(testEntries(), analyzer.GroupByModule, false)
		if g := groups["foo::bar"]; g.TotalSamples != 150 || g.MaxPercentage != 10.0 {
			t.Errorf("unexpected aggregate for foo::bar: %+v", g)
		}
		if g := groups["foo"]; g.TotalSamples != 25 {
			t.Errorf("unexpected aggregate for foo: %+v", g)
		}
		// A name with no separator maps to itself.
		if g := groups["main"]; g.TotalSamples != 10 {
			t.Errorf("unexpected aggregate for main: %+v", g)
		}
	})

	t.Run("ByCrate", func(t *testing.T) {
		groups := analyzer.GroupEntries(testEntries(), analyzer.GroupByCrate, false)
		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d: %v", len(groups), groups)
		}
		if g := groups["foo"]; g.TotalSamples != 175 || g.MaxPercentage != 10.0 {
			t.Errorf("unexpected aggregate for foo: %+v", g)
		}
		if g := groups["main"]; g.TotalSamples != 10 || g.MaxPercentage != 1.0 {
			t.Errorf("unexpected aggregate for main: %+v", g)
		}
	})

	t.Run("DemangleBeforeGrouping", func(t *testing.T) {
		entries := []analyzer.Entry{
			{Name: "foo<A>::bar", Samples: 1, Percentage: 1.0},
			{Name: "foo<B>::bar", Samples: 2, Percentage: 2.0},
		}
		groups := analyzer.GroupEntries(entries, analyzer.GroupByFunction, true)
		if len(groups) != 1 {
			t.Fatalf("expected demangled names to collapse into 1 group, got %d: %v", len(groups), groups)
		}
		if g := groups["foo::bar"]; g.TotalSamples != 3 || g.MaxPercentage != 2.0 {
			t.Errorf("unexpected aggregate: %+v", g)
		}
	})

	t.Run("NothingDroppedByPercentage", func(t *testing.T) {
		entries := []analyzer.Entry{
			{Name: "zero", Samples: 0, Percentage: 0.0},
		}
		groups := analyzer.GroupEntries(entries, analyzer.GroupByFunction, false)
		if _, ok := groups["zero"]; !ok {
			t.Error("zero-percentage entry should still be aggregated")
		}
	})
}

func TestAggregationTotalInvariant(t *testing.T) {
	// For every grouping mode, summed group totals must equal the summed
	// entry samples.
	entries := testEntries()
	want := analyzer.TotalSamples(entries)
	if want != 185 {
		t.Fatalf("fixture total changed: %d", want)
	}

	for _, mode := range []string{analyzer.GroupByFunction, analyzer.GroupByModule, analyzer.GroupByCrate} {
		t.Run(mode, func(t *testing.T) {
			var got int64
			for _, g := range analyzer.GroupEntries(entries, mode, false) {
				got += g.TotalSamples
			}
			if got != want {
				t.Errorf("group totals sum to %d, want %d", got, want)
			}
		})
	}
}
