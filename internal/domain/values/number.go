package values

import (
	"encoding/json"
	"strings"

	"github.com/nprnops/routing-reconciler/internal/domain/errors"
)

// RoutingKeyPrefix is prepended to a DN to form the routing cache key.
const RoutingKeyPrefix = "nprn:routing:"

// CanonicalNumber is a validated phone number identity. It carries the same
// number in its two store representations: the 11-digit directory number
// (prefix "41") and the 10-digit local target (prefix "0"). The two fields
// are views of one identity; dn == "41"+target[1:] and target == "0"+dn[2:]
// hold simultaneously and the value is immutable after construction.
type CanonicalNumber struct {
	dn     string
	target string
}

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewCanonicalNumber classifies a raw digit string into its canonical forms.
// Exactly two shapes are recognized: a 10-digit local number starting with
// "0", or an 11-digit directory number starting with "41". Anything else is
// an unsupported format.
func NewCanonicalNumber(raw string) (CanonicalNumber, error) {
	digits := Digits(raw)

	if len(digits) == 10 && strings.HasPrefix(digits, "0") {
		return CanonicalNumber{dn: "41" + digits[1:], target: digits}, nil
	}

	if len(digits) == 11 && strings.HasPrefix(digits, "41") {
		return CanonicalNumber{dn: digits, target: "0" + digits[2:]}, nil
	}

	return CanonicalNumber{}, errors.NewUnsupportedNumberFormatError(raw)
}

// MustNewCanonicalNumber creates a CanonicalNumber and panics on error (for tests)
func MustNewCanonicalNumber(raw string) CanonicalNumber {
	n, err := NewCanonicalNumber(raw)
	if err != nil {
		panic(err)
	}
	return n
}

// DN returns the 11-digit directory number form.
func (n CanonicalNumber) DN() string {
	return n.dn
}

// Target returns the 10-digit local number form.
func (n CanonicalNumber) Target() string {
	return n.target
}

// RoutingKey returns the routing cache key derived from the DN.
func (n CanonicalNumber) RoutingKey() string {
	return RoutingKeyPrefix + n.dn
}

// String returns the DN form.
func (n CanonicalNumber) String() string {
	return n.dn
}

// IsEmpty checks if the number is the zero value
func (n CanonicalNumber) IsEmpty() bool {
	return n.dn == ""
}

// Equal checks if two CanonicalNumber values are equal
func (n CanonicalNumber) Equal(other CanonicalNumber) bool {
	return n.dn == other.dn
}

// MarshalJSON implements JSON marshaling
func (n CanonicalNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.dn)
}

// UnmarshalJSON implements JSON unmarshaling
func (n *CanonicalNumber) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	num, err := NewCanonicalNumber(raw)
	if err != nil {
		return err
	}

	*n = num
	return nil
}
