package tabu

import "errors"

// ErrNilState is returned by Run when s is nil.
var ErrNilState = errors.New("tabu: nil solution state")

// ErrNilRNG is returned by Run when rng is nil; move selection and
// perturbation both require a random source.
var ErrNilRNG = errors.New("tabu: nil rng")

// ErrInvalidK is returned by Run when s.K() <= 0; a tabu search needs at
// least one color to assign.
var ErrInvalidK = errors.New("tabu: k must be positive")
