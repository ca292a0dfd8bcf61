package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func validInput() *ReadingInput {
	return &ReadingInput{Temperature: f(25.5), Humidity: f(60)}
}

func TestValidateAcceptsRequiredOnly(t *testing.T) {
	require.Empty(t, validInput().Validate())
}

func TestValidateAcceptsFullReading(t *testing.T) {
	in := &ReadingInput{
		Temperature:   f(34.2),
		Humidity:      f(55),
		GasResistance: f(120000),
		Pressure:      f(1013.25),
		VibrationRMS:  f(0.4),
		AudioDBFS:     f(-42.5),
	}
	require.Empty(t, in.Validate())
}

func TestValidateBoundaryValues(t *testing.T) {
	for _, in := range []*ReadingInput{
		{Temperature: f(-40), Humidity: f(0)},
		{Temperature: f(80), Humidity: f(100)},
	} {
		assert.Empty(t, in.Validate())
	}
}

func TestValidateRejectsMissingRequired(t *testing.T) {
	errs := (&ReadingInput{Humidity: f(50)}).Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "temperature", errs[0].Field)
	assert.Equal(t, ReasonMissing, errs[0].Reason)

	errs = (&ReadingInput{}).Validate()
	require.Len(t, errs, 2)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		in    *ReadingInput
		field string
	}{
		{"temperature too low", &ReadingInput{Temperature: f(-40.1), Humidity: f(50)}, "temperature"},
		{"temperature too high", &ReadingInput{Temperature: f(80.1), Humidity: f(50)}, "temperature"},
		{"humidity negative", &ReadingInput{Temperature: f(20), Humidity: f(-0.1)}, "humidity"},
		{"humidity above 100", &ReadingInput{Temperature: f(20), Humidity: f(100.1)}, "humidity"},
		{"pressure below sensor floor", &ReadingInput{Temperature: f(20), Humidity: f(50), Pressure: f(200)}, "pressure"},
		{"audio above full scale", &ReadingInput{Temperature: f(20), Humidity: f(50), AudioDBFS: f(3)}, "audio_dbfs"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.in.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
			assert.Equal(t, ReasonOutOfRange, errs[0].Reason)
		})
	}
}

func TestFieldErrorMessageNamesBounds(t *testing.T) {
	errs := (&ReadingInput{Temperature: f(120), Humidity: f(50)}).Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "temperature must be between -40 and 80", errs[0].Error())
}
