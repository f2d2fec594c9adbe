package circuit

// Preset is a named full circuit configuration used by demo mode.
type Preset struct {
	Name         string
	EMF          float64
	Resistance   float64
	Capacitance  float64
	SwitchClosed bool
}

// DemoPresets are the configurations demo mode cycles through, ordered from
// small to large time constants.
var DemoPresets = []Preset{
	{Name: "Low Voltage, Low Capacitance", EMF: 5, Resistance: 500, Capacitance: 10},
	{Name: "Medium Voltage, Medium Capacitance (Switch Closed)", EMF: 10, Resistance: 1000, Capacitance: 100, SwitchClosed: true},
	{Name: "High Voltage, High Capacitance", EMF: 20, Resistance: 5000, Capacitance: 1000, SwitchClosed: true},
	{Name: "Maximum Values (Switch Open)", EMF: 50, Resistance: 10000, Capacitance: 5000},
}

// Apply sets all four parameters from the preset. Mutations are applied in
// order and stop at the first out-of-range value, leaving earlier ones in
// place; presets shipped with the binary are always in range.
func (s *State) Apply(p Preset) error {
	if err := s.SetEMF(p.EMF); err != nil {
		return err
	}
	if err := s.SetResistance(p.Resistance); err != nil {
		return err
	}
	if err := s.SetCapacitance(p.Capacitance); err != nil {
		return err
	}
	s.SetSwitch(p.SwitchClosed)
	return nil
}
