package tan

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Direction selects one of the two travel directions of a line.
type Direction int

const (
	DirectionOutbound Direction = 0
	DirectionInbound  Direction = 1
)

// Coordinate is a query point in decimal degrees. Latitude and longitude
// are kept as strings and substituted into the request path unmodified.
type Coordinate struct {
	Latitude  string `validate:"required,latitude"`
	Longitude string `validate:"required,longitude"`
}

// WaitTimeQuery asks for the next Count passages at a stop, optionally
// restricted to one line.
type WaitTimeQuery struct {
	Stop  string `validate:"required"`
	Count int    `validate:"gte=1"`
	Line  string `validate:"omitempty"`
}

// ScheduleQuery asks for the timetable of one line at one stop in one
// direction. An empty Date means today as seen by the upstream service.
type ScheduleQuery struct {
	Stop      string    `validate:"required"`
	Line      string    `validate:"required"`
	Direction Direction `validate:"oneof=0 1"`
	Date      string    `validate:"omitempty,datetime=2006-01-02"`
}

var validate = validator.New()

// validateQuery checks a tagged query struct and converts the first
// violation into a ValidationError. No network call happens after a
// non-nil return.
func validateQuery(q any) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Reason: "failed " + fe.Tag() + " constraint"}
	}
	return &ValidationError{Field: "query", Reason: err.Error()}
}

// validateStop covers the operations whose only parameter is a stop code.
func validateStop(stop string) error {
	if stop == "" {
		return &ValidationError{Field: "Stop", Reason: "failed required constraint"}
	}
	return nil
}
