package smchash

// Rand advances state by one step of the smc_rand generator and returns
// the next 64-bit output. The state moves along a wrapping counter with
// a fixed odd increment, so the state sequence has full 2^64 period; all
// nonlinearity comes from the output mix.
//
// The generator passes BigCrush and PractRand but is not
// cryptographically secure: the state is recoverable from consecutive
// outputs. A state shared between goroutines must be serialised by the
// caller; independent states are cheaper.
func Rand(state *uint64) uint64 {
	*state += smcSecret[0]
	return mix(*state, *state^smcSecret[1])
}

// Source adapts the generator to the math/rand/v2 Source interface.
// It is not safe for concurrent use.
type Source struct {
	state uint64
}

// NewSource returns a Source starting from the given state.
func NewSource(seed uint64) *Source {
	return &Source{state: seed}
}

// Uint64 returns the next output of the generator.
func (s *Source) Uint64() uint64 {
	return Rand(&s.state)
}
