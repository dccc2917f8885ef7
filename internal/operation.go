package internal

// AccessOp classifies the read an interception layer reports. The engine
// subscribes identically for all of them; the op is carried for debug hooks
// and tracing.
type AccessOp string

const (
	AccessGet     AccessOp = "get"
	AccessHas     AccessOp = "has"
	AccessIterate AccessOp = "iterate"
)

// MutationOp classifies the write an interception layer reports.
type MutationOp string

const (
	MutationSet    MutationOp = "set"
	MutationAdd    MutationOp = "add"
	MutationDelete MutationOp = "delete"
)
