package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed is returned when an order ID was not created via
// NewID or IDFromString.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order ID must be created via NewID or IDFromString")

// idPattern matches the canonical order identifier shape:
// "TP-" + UTC timestamp (yyyymmddhhmmss) + "-" + 8 uppercase hex characters.
var idPattern = regexp.MustCompile(`^TP-\d{14}-[0-9A-F]{8}$`)

// ID is the globally unique, human-readable order identifier,
// for example "TP-20260901120000-5E8400A1". It is immutable once assigned.
type ID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewID mints a fresh order identifier from the current UTC time and a
// random 8-character suffix.
func NewID() ID {
	timestamp := time.Now().UTC().Format("20060102150405")
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return ID{
		value: fmt.Sprintf("TP-%s-%s", timestamp, suffix),
		guard: guard.NewConstructorGuard(),
	}
}

// IDFromString parses and validates an order identifier received from
// persistence or an external caller.
func IDFromString(s string) (ID, error) {
	if !idPattern.MatchString(s) {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("order ID",
			fmt.Errorf("%q does not match the TP-<timestamp>-<random> format", s))
	}

	return ID{value: s, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the ID was created through a constructor.
func (id ID) Validate() error {
	return id.guard.Validate(ErrIDIsNotConstructed)
}

// String returns the identifier text. Implements fmt.Stringer.
func (id ID) String() string {
	return id.value
}

// IsEqual reports whether two identifiers are the same.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}
