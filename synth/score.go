package synth

// Score decides which pitch is sounding at each moment. NextPitch is called
// once per sample tick with the tick length dt and returns a frequency in
// Hz, or 0 for silence.
type Score interface {
	NextPitch(dt float64) float64
}

// Rand is the source of randomness for the random score variants. It is an
// explicitly owned, seeded source, never package-global state, so a score
// built twice from the same seed plays the same notes. *math/rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Param is a score parameter that is either a fixed value or a provider
// re-evaluated on every note draw. Providers allow key and tempo changes
// over time.
type Param struct {
	val float64
	fn  func() float64
}

func Fixed(v float64) Param { return Param{val: v} }

func Dynamic(fn func() float64) Param { return Param{fn: fn} }

func (p Param) value() float64 {
	if p.fn != nil {
		return p.fn()
	}
	return p.val
}

// PresetScore plays a fixed list of notes front to back, then goes silent.
type PresetScore struct {
	queue    []Note
	current  float64
	residual float64
	ended    bool
}

func NewPresetScore(notes []Note) *PresetScore {
	queue := make([]Note, len(notes))
	copy(queue, notes)
	return &PresetScore{queue: queue, residual: -1}
}

// NextPitch returns the current note's frequency and consumes dt of its
// duration. When the current note is used up the next one is dequeued;
// when the queue is empty the score stays silent and Ended reports true.
func (s *PresetScore) NextPitch(dt float64) float64 {
	if s.residual <= 0 {
		if len(s.queue) == 0 {
			s.ended = true
			return 0
		}
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.current = next.Freq
		s.residual = next.Duration
	}
	s.ended = false
	s.residual -= dt
	return s.current
}

// Ended reports whether the score has run out of notes.
func (s *PresetScore) Ended() bool { return s.ended }

// ScaleRandomPlayer walks a scale at random, forever. Every time a note's
// duration runs out it draws a fresh duration uniformly between min and
// max and a uniformly random scale offset from the key of base.
type ScaleRandomPlayer struct {
	rnd   Rand
	scale Scale

	base     Param
	min, max Param

	freq     float64
	residual float64
}

func NewScaleRandomPlayer(rnd Rand, scale Scale, base, min, max Param) *ScaleRandomPlayer {
	return &ScaleRandomPlayer{
		rnd:      rnd,
		scale:    scale,
		base:     base,
		min:      min,
		max:      max,
		residual: -1,
	}
}

func (s *ScaleRandomPlayer) NextPitch(dt float64) float64 {
	if s.residual < 0 {
		base := s.base.value()
		min := s.min.value()
		max := s.max.value()
		// Duration before pitch: swapping the draws would change the
		// sequence produced by a given seed.
		s.residual = min + s.rnd.Float64()*(max-min)
		s.freq = Interval(base, s.scale[s.rnd.Intn(len(s.scale))])
	}
	s.residual -= dt
	return s.freq
}

// ScaleLoop cycles through the degrees of a scale in order, one note every
// interval seconds, forever.
type ScaleLoop struct {
	scale    Scale
	base     Param
	interval float64

	degree   int
	freq     float64
	residual float64
}

func NewScaleLoop(scale Scale, base Param, interval float64) *ScaleLoop {
	return &ScaleLoop{
		scale:    scale,
		base:     base,
		interval: interval,
		residual: -1,
	}
}

func (s *ScaleLoop) NextPitch(dt float64) float64 {
	if s.residual < 0 {
		s.freq = Interval(s.base.value(), s.scale[s.degree])
		s.degree = (s.degree + 1) % len(s.scale)
		s.residual = s.interval
	}
	s.residual -= dt
	return s.freq
}
