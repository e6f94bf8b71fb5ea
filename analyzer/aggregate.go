package analyzer

// Grouping modes for GroupEntries.
const (
	GroupByFunction = "function"
	GroupByModule   = "module"
	GroupByCrate    = "crate"
)

// Sort fields for FormatReport.
const (
	SortBySamples = "samples"
	SortByPercent = "percent"
)

// GroupEntries folds entries into per-key aggregates. Each entry is
// optionally demangled, keyed under the chosen grouping mode, and its
// samples added to the group total while the group keeps the maximum
// percentage seen. No entry is dropped here; filtering happens in the
// formatter.
func GroupEntries(entries []Entry, groupBy string, demangle bool) map[string]GroupStat {
	groups := make(map[string]GroupStat)

	for _, entry := range entries {
		name := entry.Name
		if demangle {
			name = Demangle(name)
		}

		var key string
		switch groupBy {
		case GroupByModule:
			key = ModuleOf(name)
		case GroupByCrate:
			key = CrateOf(name)
		default:
			key = name
		}

		stat := groups[key]
		stat.TotalSamples += entry.Samples
		if entry.Percentage > stat.MaxPercentage {
			stat.MaxPercentage = entry.Percentage
		}
		groups[key] = stat
	}

	return groups
}

// TotalSamples sums the sample counts of all entries.
func TotalSamples(entries []Entry) int64 {
	var total int64
	for _, entry := range entries {
		total += entry.Samples
	}
	return total
}
