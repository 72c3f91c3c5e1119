// Package summary aggregates a telematics document into the distance summary returned to the agent.
package summary

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/DIMO-Network/telematics-action/internal/client/telematics"
	"github.com/gertd/go-pluralize"
)

// ErrNoEquipment is returned when the document has no equipment to read a unit from.
var ErrNoEquipment = errors.New("telematics document has no equipment")

// MissingFieldError reports an equipment entry without the fields needed for the summary.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("equipment[%d] is missing %s", e.Index, e.Field)
}

// Summary is the result handed back to the agent.
type Summary struct {
	TotalDistance string `json:"total_distance"`

	// MixedUnits is set when an entry reports a unit other than the first entry's.
	// The total still uses the first entry's unit.
	MixedUnits bool `json:"-"`
}

// Builder builds distance summaries.
type Builder struct {
	pluralizer *pluralize.Client
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		pluralizer: pluralize.NewClient(),
	}
}

// Build sums the odometer of every equipment entry and labels the total with the
// pluralized unit of the first entry.
func (b *Builder) Build(doc *telematics.Document) (*Summary, error) {
	if doc == nil || len(doc.Equipment) == 0 {
		return nil, ErrNoEquipment
	}

	var total distanceSum
	for i, item := range doc.Equipment {
		if item.Distance == nil {
			return nil, &MissingFieldError{Index: i, Field: "Distance"}
		}
		if item.Distance.Odometer == nil {
			return nil, &MissingFieldError{Index: i, Field: "Distance.Odometer"}
		}
		if err := total.add(*item.Distance.Odometer); err != nil {
			return nil, fmt.Errorf("equipment[%d]: %w", i, err)
		}
	}

	unit := doc.Equipment[0].Distance.OdometerUnits
	if unit == nil {
		return nil, &MissingFieldError{Index: 0, Field: "Distance.OdometerUnits"}
	}

	return &Summary{
		TotalDistance: total.String() + " " + b.Plural(*unit),
		MixedUnits:    hasMixedUnits(doc.Equipment, *unit),
	}, nil
}

// Plural returns the plural form of a unit label. Already plural labels are returned unchanged.
func (b *Builder) Plural(unit string) string {
	return b.pluralizer.Plural(unit)
}

func hasMixedUnits(equipment []telematics.Equipment, unit string) bool {
	for _, item := range equipment[1:] {
		if item.Distance.OdometerUnits != nil && *item.Distance.OdometerUnits != unit {
			return true
		}
	}
	return false
}

// distanceSum keeps integer readings exact at any magnitude and switches to
// floating point once a fractional reading shows up.
type distanceSum struct {
	ints    big.Int
	floats  float64
	isFloat bool
}

func (s *distanceSum) add(n telematics.Number) error {
	raw := n.String()
	if !s.isFloat && !strings.ContainsAny(raw, ".eE") {
		var v big.Int
		if _, ok := v.SetString(raw, 10); ok {
			s.ints.Add(&s.ints, &v)
			return nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid odometer %q: %w", raw, err)
	}
	if !s.isFloat {
		s.isFloat = true
		s.floats, _ = new(big.Float).SetInt(&s.ints).Float64()
	}
	s.floats += v
	return nil
}

func (s *distanceSum) String() string {
	if !s.isFloat {
		return s.ints.String()
	}
	out := strconv.FormatFloat(s.floats, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
