package summary

import (
	"encoding/json"
	"testing"

	"github.com/DIMO-Network/telematics-action/internal/client/telematics"
	"github.com/stretchr/testify/require"
)

func equipment(odometer, unit string) telematics.Equipment {
	n := telematics.Number(odometer)
	u := unit
	return telematics.Equipment{Distance: &telematics.Distance{Odometer: &n, OdometerUnits: &u}}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		equipment []telematics.Equipment
		expected  string
	}{
		{
			name:      "two entries",
			equipment: []telematics.Equipment{equipment("100", "mile"), equipment("50", "mile")},
			expected:  "150 miles",
		},
		{
			name:      "single entry",
			equipment: []telematics.Equipment{equipment("1", "mile")},
			expected:  "1 miles",
		},
		{
			name:      "already plural unit",
			equipment: []telematics.Equipment{equipment("10", "miles"), equipment("5", "miles")},
			expected:  "15 miles",
		},
		{
			name:      "irregular unit",
			equipment: []telematics.Equipment{equipment("3", "foot"), equipment("4", "foot")},
			expected:  "7 feet",
		},
		{
			name:      "fractional readings",
			equipment: []telematics.Equipment{equipment("100", "kilometer"), equipment("50.5", "kilometer")},
			expected:  "150.5 kilometers",
		},
		{
			name:      "integral float total",
			equipment: []telematics.Equipment{equipment("100.5", "mile"), equipment("49.5", "mile")},
			expected:  "150.0 miles",
		},
		{
			name:      "integer total beyond int64",
			equipment: []telematics.Equipment{equipment("9000000000000000000", "mile"), equipment("9000000000000000000", "mile")},
			expected:  "18000000000000000000 miles",
		},
		{
			name:      "negative readings",
			equipment: []telematics.Equipment{equipment("-9000000000000000000", "mile"), equipment("-9000000000000000000", "mile")},
			expected:  "-18000000000000000000 miles",
		},
		{
			name:      "large integer then fraction",
			equipment: []telematics.Equipment{equipment("18000000000000000000", "mile"), equipment("0.5", "mile")},
			expected:  "18000000000000000000.0 miles",
		},
		{
			name:      "zero readings",
			equipment: []telematics.Equipment{equipment("0", "mile"), equipment("0", "mile")},
			expected:  "0 miles",
		},
	}

	builder := NewBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := builder.Build(&telematics.Document{Equipment: tt.equipment})
			require.NoError(t, err)
			require.Equal(t, tt.expected, result.TotalDistance)
			require.False(t, result.MixedUnits)
		})
	}
}

func TestBuildJSON(t *testing.T) {
	doc := &telematics.Document{Equipment: []telematics.Equipment{equipment("100", "mile"), equipment("50", "mile")}}

	result, err := NewBuilder().Build(doc)
	require.NoError(t, err)

	out, err := json.Marshal(result)
	require.NoError(t, err)
	require.JSONEq(t, `{"total_distance": "150 miles"}`, string(out))
}

func TestBuildMixedUnits(t *testing.T) {
	doc := &telematics.Document{Equipment: []telematics.Equipment{equipment("100", "mile"), equipment("50", "kilometer")}}

	result, err := NewBuilder().Build(doc)
	require.NoError(t, err)
	require.Equal(t, "150 miles", result.TotalDistance)
	require.True(t, result.MixedUnits)
}

func TestBuildErrors(t *testing.T) {
	noUnit := equipment("10", "mile")
	noUnit.Distance.OdometerUnits = nil
	noOdometer := equipment("10", "mile")
	noOdometer.Distance.Odometer = nil

	builder := NewBuilder()

	_, err := builder.Build(&telematics.Document{})
	require.ErrorIs(t, err, ErrNoEquipment)

	_, err = builder.Build(nil)
	require.ErrorIs(t, err, ErrNoEquipment)

	var missing *MissingFieldError
	_, err = builder.Build(&telematics.Document{Equipment: []telematics.Equipment{equipment("1", "mile"), {}}})
	require.ErrorAs(t, err, &missing)
	require.Equal(t, 1, missing.Index)
	require.Equal(t, "Distance", missing.Field)

	_, err = builder.Build(&telematics.Document{Equipment: []telematics.Equipment{noOdometer}})
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "Distance.Odometer", missing.Field)

	_, err = builder.Build(&telematics.Document{Equipment: []telematics.Equipment{noUnit, equipment("1", "mile")}})
	require.ErrorAs(t, err, &missing)
	require.Equal(t, 0, missing.Index)
	require.EqualError(t, err, "equipment[0] is missing Distance.OdometerUnits")

	// Only the first entry's unit is read.
	result, err := builder.Build(&telematics.Document{Equipment: []telematics.Equipment{equipment("1", "mile"), noUnit}})
	require.NoError(t, err)
	require.Equal(t, "11 miles", result.TotalDistance)
}

func TestPlural(t *testing.T) {
	builder := NewBuilder()
	require.Equal(t, "miles", builder.Plural("mile"))
	require.Equal(t, "miles", builder.Plural("miles"))
	require.Equal(t, "feet", builder.Plural("foot"))
	require.Equal(t, "feet", builder.Plural("feet"))
	require.Equal(t, "kilometers", builder.Plural("kilometer"))
}
