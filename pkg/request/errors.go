package request

import "errors"

// ErrInternalServer is returned to the client when a handler fails unexpectedly.
var ErrInternalServer = errors.New("internal server error")
