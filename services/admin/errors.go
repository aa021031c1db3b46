package admin

import "errors"

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords, so login responses never reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")
