package kernel

import (
	"fmt"
	"time"

	"tradelink/internal/pkg/errs"
)

// DeliveryDateLayout is the canonical wire format of a delivery date.
const DeliveryDateLayout = "2006-01-02"

// ErrDeliveryDateIsRequired is returned when validating a zero DeliveryDate.
var ErrDeliveryDateIsRequired = errs.NewValueIsRequiredError(
	"delivery date must be created via NewDeliveryDate or ParseDeliveryDate")

// DeliveryDate is a calendar date without a time component. It is the date an
// order is due or a trip goes out, compared and persisted in YYYY-MM-DD form.
// The zero value is invalid and fails validation.
type DeliveryDate struct {
	t time.Time
}

// NewDeliveryDate creates a DeliveryDate from a time value, truncating the
// time-of-day component in the value's location.
func NewDeliveryDate(t time.Time) DeliveryDate {
	y, m, d := t.Date()
	return DeliveryDate{t: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// ParseDeliveryDate parses a YYYY-MM-DD string into a DeliveryDate.
func ParseDeliveryDate(s string) (DeliveryDate, error) {
	if s == "" {
		return DeliveryDate{}, ErrDeliveryDateIsRequired
	}
	t, err := time.ParseInLocation(DeliveryDateLayout, s, time.Local)
	if err != nil {
		return DeliveryDate{}, errs.NewValueIsInvalidErrorWithCause("delivery date",
			fmt.Errorf("%q is not a valid %s date", s, DeliveryDateLayout))
	}
	return DeliveryDate{t: t}, nil
}

// Time returns the date as a time.Time at midnight.
func (d DeliveryDate) Time() time.Time {
	return d.t
}

// String returns the canonical YYYY-MM-DD representation.
func (d DeliveryDate) String() string {
	return d.t.Format(DeliveryDateLayout)
}

// NextDay returns the following calendar day. Used by the reschedule
// close-out path which moves pending orders to tomorrow.
func (d DeliveryDate) NextDay() DeliveryDate {
	return DeliveryDate{t: d.t.AddDate(0, 0, 1)}
}

// IsEqual compares two delivery dates by calendar day.
func (d DeliveryDate) IsEqual(other DeliveryDate) bool {
	return d.String() == other.String()
}

// Before reports whether d falls on an earlier calendar day than other.
func (d DeliveryDate) Before(other DeliveryDate) bool {
	return d.t.Before(other.t)
}

// Validate checks that the DeliveryDate was constructed and is not the zero value.
func (d DeliveryDate) Validate() error {
	if d.t.IsZero() {
		return ErrDeliveryDateIsRequired
	}
	return nil
}
