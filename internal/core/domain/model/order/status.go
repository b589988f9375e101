package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The zero value Unknown is never persisted; ParseStatus and Validate reject it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of every order.
	Pending

	// Canceled means the order will not be delivered.
	Canceled

	// Completed means the order has been delivered.
	Completed
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Canceled:  "canceled",
		Completed: "completed",
	}
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return []Status{Pending, Canceled, Completed}
}

// ParseStatus converts the persisted or requested representation into a Status.
// Matching ignores case and surrounding whitespace.
//
// Parameters:
//   - s: One of "pending", "canceled" or "completed"
//
// Returns:
//   - Status: The matching status, or Unknown on error
//   - error: ErrValueIsRequired for a blank input, ErrValueIsInvalid for anything
//     else that is not a valid status; the message lists the accepted values
//
// Example:
//
//	status, err := order.ParseStatus(" Completed ")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(status) // completed
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}

	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of %s", s, statusList()),
	)
}

func statusList() string {
	names := make([]string, 0, len(Statuses()))
	for _, status := range Statuses() {
		names = append(names, status.String())
	}
	return strings.Join(names, ", ")
}

// Validate checks that the status is one of Pending, Canceled or Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted representation, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
