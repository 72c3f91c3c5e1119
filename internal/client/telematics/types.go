package telematics

import (
	"encoding/json"
	"fmt"
)

// Document is the fleet snapshot held in the telematics fixture.
type Document struct {
	Equipment []Equipment `json:"Equipment"`
}

// Equipment is a single piece of fleet equipment.
type Equipment struct {
	Distance *Distance `json:"Distance"`
}

// Distance contains the odometer reading of a piece of equipment.
// Fields are pointers so that an absent field can be told apart from a zero value.
type Distance struct {
	Odometer      *Number `json:"Odometer"`
	OdometerUnits *string `json:"OdometerUnits"`
}

// Number is a JSON number literal kept as its original text.
// Unlike json.Number it rejects quoted values such as "100".
type Number string

// UnmarshalJSON unmarshals a Number, failing on anything but a number literal.
func (n *Number) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || (data[0] != '-' && (data[0] < '0' || data[0] > '9')) {
		return fmt.Errorf("odometer must be a number, got %s", data)
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("invalid odometer %s: %w", data, err)
	}
	*n = Number(num)
	return nil
}

// String returns the literal text of the number.
func (n Number) String() string {
	return string(n)
}
