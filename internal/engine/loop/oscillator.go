package loop

// Oscillator is a value that advances by a fixed step per frame and bounces
// between Min and Max. The phase is kept as an integer step count so the
// value never drifts outside the range through accumulated rounding.
type Oscillator struct {
	Min, Max float64
	Step     float64

	steps    int // steps per sweep
	phase    int // in [0, 2*steps)
	reversal int
}

// NewOscillator starts at lo, moving towards hi.
func NewOscillator(lo, hi, step float64) *Oscillator {
	steps := int((hi-lo)/step + 0.5)
	if steps < 1 {
		steps = 1
	}
	return &Oscillator{Min: lo, Max: hi, Step: step, steps: steps}
}

// Advance moves one step and returns the new value.
func (o *Oscillator) Advance() float32 {
	o.phase++
	if o.phase == o.steps || o.phase == 2*o.steps {
		o.reversal++
	}
	if o.phase == 2*o.steps {
		o.phase = 0
	}
	return o.Value()
}

// Value returns the current value, always within [Min, Max].
func (o *Oscillator) Value() float32 {
	pos := o.phase
	if pos > o.steps {
		pos = 2*o.steps - pos
	}
	v := o.Min + float64(pos)*o.Step
	if v > o.Max {
		v = o.Max
	}
	if v < o.Min {
		v = o.Min
	}
	return float32(v)
}

// Direction returns +1 while moving towards Max and -1 while moving towards Min.
func (o *Oscillator) Direction() int {
	if o.phase < o.steps {
		return 1
	}
	return -1
}

// Reversals returns how many times the oscillator has bounced.
func (o *Oscillator) Reversals() int {
	return o.reversal
}
