package authstate

import "github.com/dmitrymomot/remindkit/pkg/authclient"

// Status is the coarse authentication state.
type Status string

const (
	StatusUnknown         Status = "unknown"
	StatusAuthenticated   Status = "authenticated"
	StatusUnauthenticated Status = "unauthenticated"
)

// Snapshot is the auth state seen by consumers at one point in time.
// Once Loading is false, IsAuthenticated reports whether User is set.
type Snapshot struct {
	Status  Status
	User    *authclient.User
	Loading bool
	Error   string
}

// IsAuthenticated reports whether a user is signed in.
func (s Snapshot) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}

func initialSnapshot() Snapshot {
	return Snapshot{Status: StatusUnknown, Loading: true}
}

func signedIn(user *authclient.User) Snapshot {
	return Snapshot{Status: StatusAuthenticated, User: user}
}

func signedOut() Snapshot {
	return Snapshot{Status: StatusUnauthenticated}
}
