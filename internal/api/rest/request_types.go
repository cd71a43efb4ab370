package rest

// FixRequest is the shared request shape of the three reconciliation
// endpoints. EnpTarget is only consulted by the relational reassignment and
// defaults to NXP1.
type FixRequest struct {
	Input     string `json:"input" validate:"required"`
	DryRun    bool   `json:"dry_run"`
	EnpTarget string `json:"enp_target" validate:"omitempty,oneof=NXP1 NXP2"`
}
