package values

import (
	"fmt"

	"github.com/nprnops/routing-reconciler/internal/domain/errors"
)

// EnpProfile selects the (system_id, nprn) pair written when reassigning
// relational routing ownership. The mapping is a fixed, size-two table, not
// an extensible registry.
type EnpProfile struct {
	Name     string
	SystemID int
	NPRN     int
}

var enpProfiles = map[string]EnpProfile{
	"NXP1": {Name: "NXP1", SystemID: 500, NPRN: 98067},
	"NXP2": {Name: "NXP2", SystemID: 510, NPRN: 98019},
}

// EnpProfileFor looks up a profile by name (NXP1 or NXP2).
func EnpProfileFor(name string) (EnpProfile, error) {
	p, ok := enpProfiles[name]
	if !ok {
		return EnpProfile{}, errors.NewValidationError("UNKNOWN_ENP_TARGET",
			fmt.Sprintf("unknown ENP target: %s", name))
	}
	return p, nil
}

// String returns the profile name.
func (p EnpProfile) String() string {
	return p.Name
}
