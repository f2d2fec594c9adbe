// Package circuit holds the RC circuit parameters and derives the time
// constant. It is the in-process surface the ebiten presentation layer talks
// to: read accessors, validated mutators, and a change-notification hook.
//
// All access happens on the UI update goroutine; the package is not safe for
// concurrent use and does not need to be.
package circuit

// Parameter ranges, closed intervals.
const (
	MinEMF         = 0.0   // V
	MaxEMF         = 100.0 // V
	MinResistance  = 1.0   // Ω
	MaxResistance  = 10000.0
	MinCapacitance = 1.0 // µF
	MaxCapacitance = 10000.0
)

// microToFarad converts the stored µF capacitance into farads for τ.
const microToFarad = 1e-6

// Snapshot is a plain copy of the four parameters, handed to rendering code
// so it never reaches into live state mid-draw.
type Snapshot struct {
	EMF          float64 // V
	Resistance   float64 // Ω
	Capacitance  float64 // µF
	SwitchClosed bool
}

// State is the single mutable circuit instance. The zero value is not valid;
// use New.
type State struct {
	emf          float64
	resistance   float64
	capacitance  float64
	switchClosed bool

	listeners []func()
}

// New returns a state at the baseline configuration: no EMF, minimum
// resistance and capacitance, switch open.
func New() *State {
	return &State{
		emf:         MinEMF,
		resistance:  MinResistance,
		capacitance: MinCapacitance,
	}
}

// Notify registers fn to run after every successful mutation. Listeners are
// invoked synchronously, in registration order, on the mutating goroutine.
func (s *State) Notify(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *State) changed() {
	for _, fn := range s.listeners {
		fn()
	}
}

// SetEMF stores the source voltage. EMF does not factor into the time
// constant; listeners still fire so the diagram label refreshes.
func (s *State) SetEMF(v float64) error {
	if v < MinEMF || v > MaxEMF {
		return &RangeError{Param: "emf", Value: v, Min: MinEMF, Max: MaxEMF}
	}
	s.emf = v
	s.changed()
	return nil
}

// SetResistance stores the resistance in ohms.
func (s *State) SetResistance(v float64) error {
	if v < MinResistance || v > MaxResistance {
		return &RangeError{Param: "resistance", Value: v, Min: MinResistance, Max: MaxResistance}
	}
	s.resistance = v
	s.changed()
	return nil
}

// SetCapacitance stores the capacitance in microfarads.
func (s *State) SetCapacitance(v float64) error {
	if v < MinCapacitance || v > MaxCapacitance {
		return &RangeError{Param: "capacitance", Value: v, Min: MinCapacitance, Max: MaxCapacitance}
	}
	s.capacitance = v
	s.changed()
	return nil
}

// SetSwitch stores the switch position. The switch has no numeric effect on
// the time constant; it only selects the charging vs discharging loop in the
// diagram.
func (s *State) SetSwitch(closed bool) {
	s.switchClosed = closed
	s.changed()
}

func (s *State) EMF() float64         { return s.emf }
func (s *State) Resistance() float64  { return s.resistance }
func (s *State) Capacitance() float64 { return s.capacitance }
func (s *State) SwitchClosed() bool   { return s.switchClosed }

// TimeConstant returns τ = R × C in seconds, recomputed from current state.
func (s *State) TimeConstant() float64 {
	return s.resistance * s.capacitance * microToFarad
}

// Snapshot copies the current parameters.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		EMF:          s.emf,
		Resistance:   s.resistance,
		Capacitance:  s.capacitance,
		SwitchClosed: s.switchClosed,
	}
}
