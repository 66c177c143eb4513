package order

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	Draft ──> Initiated ──> Paid ──> Delivered
//	  └───────────┴──────────┴──> Canceled
//
// Transitions are not guarded: the Order exposes them as plain setters and
// callers are responsible for sequencing them.
type Status int

const (
	// Draft is the initial status of a new order. Its zero value is valid.
	Draft Status = iota

	// Initiated means checkout has started.
	Initiated

	// Paid means payment was confirmed.
	Paid

	// Delivered is terminal.
	Delivered

	// Canceled is terminal and reachable from any other status.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Draft:     "Draft",
		Initiated: "Initiated",
		Paid:      "Paid",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// Validate checks that s is one of the defined statuses. Used for values
// coming from storage.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further business transition is expected.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Canceled
}

// ParseStatus maps the String form back to a Status.
func ParseStatus(str string) (Status, error) {
	for s, name := range getStatusStrings() {
		if name == str {
			return s, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", str))
}
