package circuit

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-15

func assertTimeConstant(t *testing.T, s *State, want float64) {
	t.Helper()
	got := s.TimeConstant()
	if math.Abs(got-want) > tolerance {
		t.Fatalf("TimeConstant() = %g, want %g", got, want)
	}
}

func TestNewDefaults(t *testing.T) {
	s := New()
	if s.EMF() != 0 {
		t.Fatalf("default EMF = %g, want 0", s.EMF())
	}
	if s.Resistance() != 1 {
		t.Fatalf("default resistance = %g, want 1", s.Resistance())
	}
	if s.Capacitance() != 1 {
		t.Fatalf("default capacitance = %g, want 1", s.Capacitance())
	}
	if s.SwitchClosed() {
		t.Fatalf("default switch should be open")
	}
	assertTimeConstant(t, s, 1e-6)
}

func TestTimeConstantProduct(t *testing.T) {
	cases := []struct {
		r, c, want float64
	}{
		{1, 1, 1e-6},
		{1000, 100, 0.1},
		{10000, 10000, 100},
		{500, 10, 5e-3},
		{1, 10000, 0.01},
	}
	for _, tc := range cases {
		s := New()
		if err := s.SetResistance(tc.r); err != nil {
			t.Fatalf("SetResistance(%g): %v", tc.r, err)
		}
		if err := s.SetCapacitance(tc.c); err != nil {
			t.Fatalf("SetCapacitance(%g): %v", tc.c, err)
		}
		assertTimeConstant(t, s, tc.want)
	}
}

func TestSetEMFDoesNotChangeTimeConstant(t *testing.T) {
	s := New()
	before := s.TimeConstant()
	if err := s.SetEMF(50); err != nil {
		t.Fatalf("SetEMF(50): %v", err)
	}
	if s.EMF() != 50 {
		t.Fatalf("EMF = %g, want 50", s.EMF())
	}
	assertTimeConstant(t, s, before)
}

func TestSetSwitchDoesNotChangeTimeConstant(t *testing.T) {
	s := New()
	before := s.TimeConstant()
	s.SetSwitch(true)
	if !s.SwitchClosed() {
		t.Fatalf("switch should be closed")
	}
	assertTimeConstant(t, s, before)
	s.SetSwitch(false)
	assertTimeConstant(t, s, before)
}

func TestRangeRejection(t *testing.T) {
	cases := []struct {
		name string
		set  func(*State) error
	}{
		{"emf below", func(s *State) error { return s.SetEMF(-0.1) }},
		{"emf above", func(s *State) error { return s.SetEMF(100.1) }},
		{"resistance below", func(s *State) error { return s.SetResistance(0) }},
		{"resistance above", func(s *State) error { return s.SetResistance(10001) }},
		{"capacitance below", func(s *State) error { return s.SetCapacitance(0) }},
		{"capacitance above", func(s *State) error { return s.SetCapacitance(10001) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			prior := s.Snapshot()
			err := tc.set(s)
			if err == nil {
				t.Fatalf("expected range error")
			}
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("error %v does not wrap ErrOutOfRange", err)
			}
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("error %v is not a *RangeError", err)
			}
			if s.Snapshot() != prior {
				t.Fatalf("state changed after rejected mutation: %+v", s.Snapshot())
			}
		})
	}
}

func TestRangeBoundsInclusive(t *testing.T) {
	s := New()
	if err := s.SetEMF(0); err != nil {
		t.Fatalf("SetEMF(0): %v", err)
	}
	if err := s.SetEMF(100); err != nil {
		t.Fatalf("SetEMF(100): %v", err)
	}
	if err := s.SetResistance(1); err != nil {
		t.Fatalf("SetResistance(1): %v", err)
	}
	if err := s.SetResistance(10000); err != nil {
		t.Fatalf("SetResistance(10000): %v", err)
	}
	if err := s.SetCapacitance(1); err != nil {
		t.Fatalf("SetCapacitance(1): %v", err)
	}
	if err := s.SetCapacitance(10000); err != nil {
		t.Fatalf("SetCapacitance(10000): %v", err)
	}
}

func TestNotifyFiresOnSuccessfulMutation(t *testing.T) {
	s := New()
	calls := 0
	s.Notify(func() { calls++ })

	if err := s.SetEMF(10); err != nil {
		t.Fatalf("SetEMF: %v", err)
	}
	if err := s.SetResistance(2000); err != nil {
		t.Fatalf("SetResistance: %v", err)
	}
	if err := s.SetCapacitance(50); err != nil {
		t.Fatalf("SetCapacitance: %v", err)
	}
	s.SetSwitch(true)
	if calls != 4 {
		t.Fatalf("listener fired %d times, want 4", calls)
	}
}

func TestNotifyNotFiredOnRejectedMutation(t *testing.T) {
	s := New()
	calls := 0
	s.Notify(func() { calls++ })

	if err := s.SetResistance(-5); err == nil {
		t.Fatalf("expected range error")
	}
	if calls != 0 {
		t.Fatalf("listener fired %d times after rejected mutation, want 0", calls)
	}
}

func TestNotifyOrder(t *testing.T) {
	s := New()
	var order []int
	s.Notify(func() { order = append(order, 1) })
	s.Notify(func() { order = append(order, 2) })
	s.SetSwitch(true)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("listeners fired out of order: %v", order)
	}
}

func TestApplyPreset(t *testing.T) {
	for _, p := range DemoPresets {
		s := New()
		if err := s.Apply(p); err != nil {
			t.Fatalf("Apply(%q): %v", p.Name, err)
		}
		snap := s.Snapshot()
		want := Snapshot{EMF: p.EMF, Resistance: p.Resistance, Capacitance: p.Capacitance, SwitchClosed: p.SwitchClosed}
		if snap != want {
			t.Fatalf("Apply(%q) = %+v, want %+v", p.Name, snap, want)
		}
	}
}

func TestApplyPresetOutOfRange(t *testing.T) {
	s := New()
	err := s.Apply(Preset{Name: "bad", EMF: 10, Resistance: 99999, Capacitance: 10})
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
