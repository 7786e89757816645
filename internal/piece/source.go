package piece

import "math/rand"

// Source supplies the kinds of upcoming pieces.
type Source interface {
	Next() Kind
}

// RandomSource picks every kind with equal probability.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomSource) Next() Kind {
	return Kind(r.rng.Intn(NumKinds))
}

// Sequence replays a fixed list of kinds, starting over when exhausted.
type Sequence struct {
	kinds []Kind
	pos   int
}

// NewSequence returns a Sequence over kinds. It panics if kinds is empty
// or holds an unknown kind.
func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		panic("piece: empty sequence")
	}
	for _, k := range kinds {
		k.mustBeValid()
	}
	return &Sequence{kinds: append([]Kind(nil), kinds...)}
}

func (s *Sequence) Next() Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
