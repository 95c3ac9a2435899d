package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrCommand  = "command"
	AttrBreaker  = "breaker"
	AttrState    = "state"
)
