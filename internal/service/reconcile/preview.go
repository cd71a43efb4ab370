package reconcile

import (
	"github.com/nprnops/routing-reconciler/internal/domain/numberrange"
	"github.com/nprnops/routing-reconciler/internal/domain/values"
)

// Preview is the full derived key set for one reconciliation request: three
// parallel sequences of equal length where index i across all three denotes
// the same logical number. It never outlives a single request.
type Preview struct {
	Count             int      `json:"count"`
	ExpandedTargets   []string `json:"expanded_targets"`
	ExpandedDNs       []string `json:"expanded_dns"`
	ExpandedRedisKeys []string `json:"expanded_redis_keys"`
}

// BuildPreview expands expr and classifies every element. A single
// classification failure aborts the whole call with the first encountered
// error; there are no partial results and no I/O.
func BuildPreview(expr string) (*Preview, error) {
	rawList, err := numberrange.Expand(expr, numberrange.DefaultMaxSpan)
	if err != nil {
		return nil, err
	}

	p := &Preview{
		ExpandedTargets:   make([]string, 0, len(rawList)),
		ExpandedDNs:       make([]string, 0, len(rawList)),
		ExpandedRedisKeys: make([]string, 0, len(rawList)),
	}
	for _, raw := range rawList {
		n, err := values.NewCanonicalNumber(raw)
		if err != nil {
			return nil, err
		}
		p.ExpandedTargets = append(p.ExpandedTargets, n.Target())
		p.ExpandedDNs = append(p.ExpandedDNs, n.DN())
		p.ExpandedRedisKeys = append(p.ExpandedRedisKeys, n.RoutingKey())
	}
	p.Count = len(p.ExpandedTargets)

	return p, nil
}
