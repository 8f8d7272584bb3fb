package teams

import "errors"

// ErrNotFound is returned when an operation targeted a well-formed ID that
// matches no document. Handlers translate it to HTTP 404; every other store
// error is a 500.
var ErrNotFound = errors.New("equipe not found")
