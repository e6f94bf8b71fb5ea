package analyzer

import (
	"fmt"
	"log"

	"github.com/google/pprof/profile"
)

// EntriesFromProfile flattens a pprof profile into Entries so that raw
// profiles flow through the same grouping and report pipeline as
// flamegraph SVGs. Each sample's value is attributed flat to the top
// frame's function, per-function totals become sample counts, and
// percentages are computed against the profile total.
func EntriesFromProfile(p *profile.Profile) ([]Entry, error) {
	valueIndex, err := sampleValueIndex(p)
	if err != nil {
		return nil, err
	}

	flat := make(map[string]int64)
	var total int64

	for _, s := range p.Sample {
		if len(s.Location) == 0 || len(s.Value) <= valueIndex {
			continue
		}
		v := s.Value[valueIndex]
		total += v
		// Flat value goes to the topmost frame of the stack. A location
		// can carry several lines due to inlining; the first line with a
		// function wins.
		for _, line := range s.Location[0].Line {
			if line.Function != nil {
				flat[line.Function.Name] += v
				break
			}
		}
	}

	if total == 0 {
		log.Printf("Warning: total value for sample type %s/%s is zero",
			p.SampleType[valueIndex].Type, p.SampleType[valueIndex].Unit)
	}

	entries := make([]Entry, 0, len(flat))
	for name, v := range flat {
		percent := 0.0
		if total != 0 {
			percent = float64(v) / float64(total) * 100
		}
		entries = append(entries, Entry{Name: name, Samples: v, Percentage: percent})
	}
	return entries, nil
}

// sampleValueIndex picks which sample value to aggregate. The
// samples/count type matches the report's unit best; cpu time is the
// fallback, then whatever the profile offers.
func sampleValueIndex(p *profile.Profile) (int, error) {
	for i, st := range p.SampleType {
		if st.Type == "samples" && st.Unit == "count" {
			return i, nil
		}
	}
	for i, st := range p.SampleType {
		if st.Type == "cpu" {
			log.Printf("No samples/count value type, using %s/%s", st.Type, st.Unit)
			return i, nil
		}
	}
	if len(p.SampleType) > 0 {
		st := p.SampleType[0]
		log.Printf("Warning: could not identify a sample count value type, defaulting to index 0: %s/%s", st.Type, st.Unit)
		return 0, nil
	}
	return 0, fmt.Errorf("profile has no sample types")
}
