package domain

// MetricUnit tags a computed value so the presentation layer can format it
// without re-deriving units.
type MetricUnit string

const (
	UnitCurrency MetricUnit = "currency"
	UnitPercent  MetricUnit = "percent"
	UnitRatio    MetricUnit = "ratio"
	UnitCount    MetricUnit = "count"
)

// Metric is a single computed KPI value with its unit hint.
type Metric struct {
	Value float64    `json:"value"`
	Unit  MetricUnit `json:"unit"`
}

// KPIResult maps metric names to computed values. It is produced fresh on
// every engine call and has no lifecycle of its own.
type KPIResult map[string]Metric

func Currency(v float64) Metric { return Metric{Value: v, Unit: UnitCurrency} }
func Percent(v float64) Metric  { return Metric{Value: v, Unit: UnitPercent} }
func Ratio(v float64) Metric    { return Metric{Value: v, Unit: UnitRatio} }
func Count(v float64) Metric    { return Metric{Value: v, Unit: UnitCount} }
