package domain

// CheatRequest is an explicit, opt-in request to bias a round outcome.
// It is only honored when the matching feature flag is enabled, applies
// with a bounded per-type probability, and every applied override is
// marked on the result and audit-logged. Never silent.
type CheatRequest struct {
	Active bool   `json:"cheatActive"`
	Type   string `json:"cheatType,omitempty"`
}
