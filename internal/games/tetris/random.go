package tetris

// Randomizer is the source of piece choices. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// randomKind draws one of the seven playable kinds uniformly.
func randomKind(r Randomizer) Kind {
	return Kind(r.Intn(KindCount))
}

// Sequence is a Randomizer that replays fixed kinds in order and then
// repeats from the start. Useful for scripted sessions.
type Sequence struct {
	kinds []Kind
	pos   int
}

// NewSequence returns a scripted randomizer. Panics when empty.
func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		panic("tetris: empty piece sequence")
	}
	return &Sequence{kinds: kinds}
}

// Intn returns the next scripted kind, wrapped into [0, n).
func (s *Sequence) Intn(n int) int {
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return int(k) % n
}
