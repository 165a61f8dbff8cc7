package reduction

import "errors"

// ErrNilGraph is returned by Apply when g is nil. Reduction has no
// meaningful degree sequence to scan without a Graph Store to consult.
var ErrNilGraph = errors.New("reduction: nil graph")
