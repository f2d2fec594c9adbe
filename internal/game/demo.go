package game

import (
	"time"

	"rcvis/internal/circuit"
	"rcvis/internal/logger"
)

// demoSequencer steps the circuit through the demo presets on a timer, then
// leaves the user in control.
type demoSequencer struct {
	interval time.Duration
	next     time.Time
	idx      int
}

func newDemoSequencer(interval time.Duration) *demoSequencer {
	return &demoSequencer{
		interval: interval,
		next:     time.Now().Add(interval / 3),
	}
}

func (d *demoSequencer) done() bool { return d.idx >= len(circuit.DemoPresets) }

// update applies the next preset when due and returns its name, or "" when
// nothing happened this tick.
func (d *demoSequencer) update(st *circuit.State, log *logger.Logger) string {
	if d.done() || time.Now().Before(d.next) {
		return ""
	}
	p := circuit.DemoPresets[d.idx]
	if err := st.Apply(p); err != nil {
		log.Errorw("demo preset rejected", "preset", p.Name, "err", err)
		d.idx = len(circuit.DemoPresets)
		return ""
	}
	log.Infow("demo step",
		"preset", p.Name,
		"emf_v", p.EMF,
		"resistance_ohm", p.Resistance,
		"capacitance_uf", p.Capacitance,
		"switch_closed", p.SwitchClosed,
		"tau", circuit.FormatSeconds(st.TimeConstant()),
	)
	d.idx++
	d.next = time.Now().Add(d.interval)
	return p.Name
}
