package humandur

import "errors"

// ErrNoValidToken is returned when the input contains no recognized
// magnitude+unit token.
var ErrNoValidToken = errors.New("no valid duration token")
