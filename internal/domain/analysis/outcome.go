package analysis

// FailureKind is the classified category of a failed analysis.
type FailureKind string

const (
	FailureNone            FailureKind = ""
	FailureValidation      FailureKind = "validation"
	FailureThrottled       FailureKind = "throttled"
	FailureModelTransition FailureKind = "model_transition"
	FailureParse           FailureKind = "parse"
	FailureExternal        FailureKind = "external"
	FailureUnknown         FailureKind = "unknown"
)

// Outcome is the only value that crosses the boundary back to the caller:
// either a full result or a human-readable error string, never both.
type Outcome struct {
	Success bool    `json:"success"`
	Data    *Result `json:"data,omitempty"`
	Error   string  `json:"error,omitempty"`

	// Kind drives transport-level mapping (HTTP status, audit log); it is
	// not part of the caller-facing JSON contract.
	Kind FailureKind `json:"-"`
}

// Succeed wraps a validated result.
func Succeed(r *Result) Outcome {
	return Outcome{Success: true, Data: r}
}

// Fail wraps a classified failure message.
func Fail(kind FailureKind, msg string) Outcome {
	return Outcome{Success: false, Error: msg, Kind: kind}
}
