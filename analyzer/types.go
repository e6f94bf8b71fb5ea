package analyzer

// Entry is one parsed flamegraph frame: the decoded title text split into
// its function name, sample count and percentage of total samples.
type Entry struct {
	Name       string
	Samples    int64
	Percentage float64
}

// GroupStat is the aggregate for one group key: the summed sample count
// and the highest percentage observed among the entries of the group.
type GroupStat struct {
	TotalSamples  int64
	MaxPercentage float64
}

// --- JSON output structs ---

// ErrorResult carries an error message in JSON output.
type ErrorResult struct {
	Error string `json:"error"`
	TopN  int    `json:"topN,omitempty"`
}

// GroupStatJSON is one report row in JSON output.
type GroupStatJSON struct {
	Name                  string  `json:"name"`
	TotalSamples          int64   `json:"totalSamples"`
	TotalSamplesFormatted string  `json:"totalSamplesFormatted"` // e.g. "1,500"
	MaxPercentage         float64 `json:"maxPercentage"`
}

// FlamegraphAnalysisResult is the whole analysis in JSON output.
type FlamegraphAnalysisResult struct {
	ParsedFrames          int             `json:"parsedFrames"`
	TotalSamples          int64           `json:"totalSamples"`
	TotalSamplesFormatted string          `json:"totalSamplesFormatted"`
	GroupBy               string          `json:"groupBy"`
	SortBy                string          `json:"sortBy"`
	TopN                  int             `json:"topN"`
	Groups                []GroupStatJSON `json:"groups"`
}

// groupRow pairs a group key with its aggregate while building a report.
type groupRow struct {
	Name string
	Stat GroupStat
}
