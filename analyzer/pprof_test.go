package analyzer_test

import (
	"testing"

	"github.com/google/pprof/profile"

	"github.com/ZephyrDeng/flamescan/analyzer"
)

func testProfile() *profile.Profile {
	mainFn := &profile.Function{ID: 1, Name: "main.main", Filename: "main.go"}
	fooFn := &profile.Function{ID: 2, Name: "main.foo", Filename: "main.go"}
	barFn := &profile.Function{ID: 3, Name: "main.bar", Filename: "main.go"}

	mainLoc := &profile.Location{ID: 1, Line: []profile.Line{{Function: mainFn, Line: 10}}}
	fooLoc := &profile.Location{ID: 2, Line: []profile.Line{{Function: fooFn, Line: 20}}}
	barLoc := &profile.Location{ID: 3, Line: []profile.Line{{Function: barFn, Line: 30}}}

	return &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "samples", Unit: "count"},
			{Type: "cpu", Unit: "nanoseconds"},
		},
		Sample: []*profile.Sample{
			{
				// Leaf first: bar <- foo <- main
				Location: []*profile.Location{barLoc, fooLoc, mainLoc},
				Value:    []int64{3, 3000},
			},
			{
				Location: []*profile.Location{fooLoc, mainLoc},
				Value:    []int64{2, 2000},
			},
		},
	}
}

func TestEntriesFromProfile(t *testing.T) {
	entries, err := analyzer.EntriesFromProfile(testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 flat entries, got %d: %+v", len(entries), entries)
	}

	byName := make(map[string]analyzer.Entry)
	for _, e := range entries {
		byName[e.Name] = e
	}

	// Values attribute flat to the leaf frame of each stack.
	if e := byName["main.bar"]; e.Samples != 3 || e.Percentage != 60.0 {
		t.Errorf("unexpected entry for main.bar: %+v", e)
	}
	if e := byName["main.foo"]; e.Samples != 2 || e.Percentage != 40.0 {
		t.Errorf("unexpected entry for main.foo: %+v", e)
	}
	if _, ok := byName["main.main"]; ok {
		t.Error("main.main never appears as a leaf and should have no flat entry")
	}

	if got := analyzer.TotalSamples(entries); got != 5 {
		t.Errorf("total samples = %d, want 5", got)
	}
}

func TestEntriesFromProfileThroughPipeline(t *testing.T) {
	entries, err := analyzer.EntriesFromProfile(testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := analyzer.Options{TopN: 10, GroupBy: analyzer.GroupByFunction, SortBy: analyzer.SortBySamples}
	out, err := analyzer.AnalyzeEntries(entries, opts, analyzer.FormatText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Parsed 2 stack frames"; out[:len(want)] != want {
		t.Errorf("unexpected preamble:\n%s", out)
	}
}

func TestEntriesFromProfileNoSampleTypes(t *testing.T) {
	if _, err := analyzer.EntriesFromProfile(&profile.Profile{}); err == nil {
		t.Error("expected an error for a profile with no sample types")
	}
}
