package circuit

import "fmt"

// Formatting helpers shared by the on-screen labels, log lines, and the xlsx
// export. Units are spelled in ASCII ("uF", "us", "Ohm") because the debug
// font the renderer uses has no glyphs outside ASCII.

// FormatSeconds renders a time constant with the prefix that keeps the
// mantissa readable: seconds at 1 s and above, then ms, then us.
func FormatSeconds(v float64) string {
	switch {
	case v >= 1:
		return fmt.Sprintf("%.3f s", v)
	case v >= 1e-3:
		return fmt.Sprintf("%.3f ms", v*1e3)
	default:
		return fmt.Sprintf("%.3f us", v*1e6)
	}
}

// FormatOhms renders a resistance, switching to kOhm at 1000 Ohm.
func FormatOhms(v float64) string {
	if v >= 1000 {
		return fmt.Sprintf("%.1f kOhm", v/1000)
	}
	return fmt.Sprintf("%.1f Ohm", v)
}

// FormatVolts renders an EMF value.
func FormatVolts(v float64) string {
	return fmt.Sprintf("%.1f V", v)
}

// FormatMicrofarads renders a capacitance stored in uF.
func FormatMicrofarads(v float64) string {
	return fmt.Sprintf("%.1f uF", v)
}
