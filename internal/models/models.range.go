package models

import "time"

// TimeRange is the requested lookback window for historical queries.
type TimeRange string

const (
	Range15Min   TimeRange = "15m"
	Range1Hour   TimeRange = "1h"
	Range24Hours TimeRange = "24h"
	Range7Days   TimeRange = "7d"
)

// Aggregation selects how history rows are shaped for a given range.
type Aggregation string

const (
	AggregationRaw    Aggregation = "raw"
	AggregationHourly Aggregation = "hourly"
)

// RangePolicy binds a lookback duration to an aggregation mode. Ranges up
// to 24h stay raw to preserve short-term detail; 7d averages per hour to
// keep the payload small while the trend shape survives. Callers pick the
// range, never the aggregation.
type RangePolicy struct {
	Lookback    time.Duration
	Aggregation Aggregation
}

var rangePolicies = map[TimeRange]RangePolicy{
	Range15Min:   {Lookback: 15 * time.Minute, Aggregation: AggregationRaw},
	Range1Hour:   {Lookback: time.Hour, Aggregation: AggregationRaw},
	Range24Hours: {Lookback: 24 * time.Hour, Aggregation: AggregationRaw},
	Range7Days:   {Lookback: 7 * 24 * time.Hour, Aggregation: AggregationHourly},
}

// ParseTimeRange maps a raw query value to a known range. Empty or
// unrecognized values fall back to 24h rather than being rejected, so old
// dashboard builds keep working after ranges change.
func ParseTimeRange(raw string) TimeRange {
	r := TimeRange(raw)
	if _, ok := rangePolicies[r]; !ok {
		return Range24Hours
	}
	return r
}

// Policy returns the lookback and aggregation for the range. Unknown ranges
// resolve through the same 24h fallback as ParseTimeRange.
func (r TimeRange) Policy() RangePolicy {
	if p, ok := rangePolicies[r]; ok {
		return p
	}
	return rangePolicies[Range24Hours]
}
