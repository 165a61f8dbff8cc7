package ils

import "errors"

// ErrNilGraph is returned by Run when g is nil.
var ErrNilGraph = errors.New("ils: nil graph")
