package broadcast

import "errors"

// ErrClosed is returned when publishing to a closed subject.
var ErrClosed = errors.New("broadcast: subject is closed")
