package session

// State is the lifecycle of the client session.
//
//	Uninitialized → Loading → Authenticated | Anonymous
//
// Authenticated and Anonymous can follow each other through login/logout;
// Uninitialized and Loading occur only once, at startup.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}
