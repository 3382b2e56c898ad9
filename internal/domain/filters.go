package domain

// ReportFilters narrow a KPI report to a subset of stores and years. Empty
// slices mean "all".
type ReportFilters struct {
	StoreCodes []string
	Years      []int
}

// MatchesStore reports whether a record for the given store code passes the
// filter.
func (f *ReportFilters) MatchesStore(code string) bool {
	if f == nil || len(f.StoreCodes) == 0 {
		return true
	}
	for _, sc := range f.StoreCodes {
		if sc == code {
			return true
		}
	}
	return false
}

// YearsOrNil returns the year filter, tolerating a nil receiver.
func (f *ReportFilters) YearsOrNil() []int {
	if f == nil {
		return nil
	}
	return f.Years
}

// MatchesYear reports whether a record for the given year passes the filter.
func (f *ReportFilters) MatchesYear(year int) bool {
	if f == nil || len(f.Years) == 0 {
		return true
	}
	for _, y := range f.Years {
		if y == year {
			return true
		}
	}
	return false
}
