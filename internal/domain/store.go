package domain

// OverheadCode is the pseudo-store used for costs that cannot be attributed to
// a single location (central office, chain-wide marketing).
const OverheadCode = "OOH"

// Store is the static registry entry for a retail location.
type Store struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	SQM     int     `json:"sqm"`
	Opened  string  `json:"opened"`
}

// Registry indexes stores by code.
type Registry map[string]Store

// Name returns the display name for a store code, falling back to the code
// itself for unknown stores.
func (r Registry) Name(code string) string {
	if s, ok := r[code]; ok {
		return s.Name
	}
	return code
}

// Codes returns every store code except the overhead pseudo-store.
func (r Registry) Codes() []string {
	codes := make([]string, 0, len(r))
	for code := range r {
		if code == OverheadCode {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// TotalSQM sums floor surface for the given store codes, skipping overhead.
func (r Registry) TotalSQM(codes []string) int {
	total := 0
	for _, code := range codes {
		if code == OverheadCode {
			continue
		}
		if s, ok := r[code]; ok {
			total += s.SQM
		}
	}
	return total
}
