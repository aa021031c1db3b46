package admin

// AuthService authenticates administrators and issues bearer credentials.
type AuthService interface {
	// Authenticate checks the credentials and returns a signed token valid
	// for one day. Unknown usernames and wrong passwords fail identically.
	Authenticate(username, password string) (string, error)
	// EnsureSeedAdmin creates the configured admin account when missing.
	EnsureSeedAdmin() error
}
