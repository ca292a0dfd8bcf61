// FilePath: internal/models/models.reading.go
package models

import "time"

// SensorReading represents a single stored measurement set from the hive
// edge device. Temperature and humidity are always present; the remaining
// metrics were added with later sensor board revisions and may be NULL for
// old rows.
type SensorReading struct {
	ID            int64     `json:"id,omitempty" db:"id"`
	Temperature   float64   `json:"temperature" db:"temperature"`
	Humidity      float64   `json:"humidity" db:"humidity"`
	GasResistance *float64  `json:"gas_resistance,omitempty" db:"gas_resistance"`
	Pressure      *float64  `json:"pressure,omitempty" db:"pressure"`
	VibrationRMS  *float64  `json:"vibration_rms,omitempty" db:"vibration_rms"`
	AudioDBFS     *float64  `json:"audio_dbfs,omitempty" db:"audio_dbfs"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
}

// HourlyAverage represents the per-metric arithmetic mean of all readings
// that fall into one wall-clock hour. Timestamp is the hour bucket start.
type HourlyAverage struct {
	Temperature   float64   `json:"temperature" db:"temperature"`
	Humidity      float64   `json:"humidity" db:"humidity"`
	GasResistance *float64  `json:"gas_resistance,omitempty" db:"gas_resistance"`
	Pressure      *float64  `json:"pressure,omitempty" db:"pressure"`
	VibrationRMS  *float64  `json:"vibration_rms,omitempty" db:"vibration_rms"`
	AudioDBFS     *float64  `json:"audio_dbfs,omitempty" db:"audio_dbfs"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
}

// History is the result of a windowed query: either raw readings or hourly
// averages, never both, as selected by the range policy.
type History struct {
	Range       TimeRange
	Aggregation Aggregation
	Raw         []SensorReading
	Hourly      []HourlyAverage
}

// Rows returns the payload slice for the applied aggregation mode. The
// result is never nil so an empty window serializes as [].
func (h *History) Rows() any {
	if h.Aggregation == AggregationHourly {
		if h.Hourly == nil {
			return []HourlyAverage{}
		}
		return h.Hourly
	}
	if h.Raw == nil {
		return []SensorReading{}
	}
	return h.Raw
}
