package domain

// Actor is the authenticated caller. Core services receive it explicitly and
// never read request state themselves.
type Actor struct {
	UserID string
	Role   string
}
