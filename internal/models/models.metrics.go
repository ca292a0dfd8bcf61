// FilePath: internal/models/models.metrics.go
package models

import "fmt"

// MetricSpec declares one tracked metric: its JSON field name, whether every
// reading must carry it, and the physically plausible value range.
type MetricSpec struct {
	Name     string
	Required bool
	Min      float64
	Max      float64
}

// MetricSpecs is the closed set of metrics a reading may carry. Values
// outside these bounds indicate a sensor or transmission fault and are
// rejected rather than stored.
var MetricSpecs = []MetricSpec{
	{Name: "temperature", Required: true, Min: -40, Max: 80},
	{Name: "humidity", Required: true, Min: 0, Max: 100},
	{Name: "gas_resistance", Min: 0, Max: 1000000},
	{Name: "pressure", Min: 300, Max: 1100},
	{Name: "vibration_rms", Min: 0, Max: 16},
	{Name: "audio_dbfs", Min: -120, Max: 0},
}

// FieldReason classifies why a metric field failed validation.
type FieldReason string

const (
	ReasonMissing    FieldReason = "missing"
	ReasonOutOfRange FieldReason = "out_of_range"
)

// FieldError describes a single rejected metric field.
type FieldError struct {
	Field  string      `json:"field"`
	Reason FieldReason `json:"reason"`
	Min    float64     `json:"min"`
	Max    float64     `json:"max"`
}

func (e FieldError) Error() string {
	if e.Reason == ReasonMissing {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s must be between %g and %g", e.Field, e.Min, e.Max)
}

// ReadingInput is the ingest request body. Pointers distinguish absent
// fields from zero values; non-numeric JSON fails at decode time.
type ReadingInput struct {
	Temperature   *float64 `json:"temperature"`
	Humidity      *float64 `json:"humidity"`
	GasResistance *float64 `json:"gas_resistance"`
	Pressure      *float64 `json:"pressure"`
	VibrationRMS  *float64 `json:"vibration_rms"`
	AudioDBFS     *float64 `json:"audio_dbfs"`
}

func (in *ReadingInput) metric(name string) *float64 {
	switch name {
	case "temperature":
		return in.Temperature
	case "humidity":
		return in.Humidity
	case "gas_resistance":
		return in.GasResistance
	case "pressure":
		return in.Pressure
	case "vibration_rms":
		return in.VibrationRMS
	case "audio_dbfs":
		return in.AudioDBFS
	}
	return nil
}

// Validate checks the input against MetricSpecs and returns one FieldError
// per violation. An empty result means the reading is storable.
func (in *ReadingInput) Validate() []FieldError {
	var errs []FieldError
	for _, spec := range MetricSpecs {
		value := in.metric(spec.Name)
		if value == nil {
			if spec.Required {
				errs = append(errs, FieldError{Field: spec.Name, Reason: ReasonMissing, Min: spec.Min, Max: spec.Max})
			}
			continue
		}
		if *value < spec.Min || *value > spec.Max {
			errs = append(errs, FieldError{Field: spec.Name, Reason: ReasonOutOfRange, Min: spec.Min, Max: spec.Max})
		}
	}
	return errs
}
