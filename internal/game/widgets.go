package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Hold-to-repeat timing for spinner buttons, in ticks (60/s).
const (
	repeatDelayTicks = 24
	repeatEveryTicks = 4
)

type button struct {
	x, y, w, h int
	label      string

	hovered   bool
	pressed   bool
	heldTicks int
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

// clicked reports a full press-and-release inside the button, the way the
// main action buttons behave.
func (b *button) clicked(mx, my int) bool {
	b.hovered = b.contains(mx, my)
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		was := b.pressed && b.hovered
		b.pressed = false
		return was
	}
	return false
}

// fired reports press events with hold-to-repeat, for the spinner +/- buttons:
// once on the initial press, then repeatedly after a short delay while held.
func (b *button) fired(mx, my int) bool {
	b.hovered = b.contains(mx, my)
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		b.pressed = false
		b.heldTicks = 0
		return false
	}
	if !(b.pressed && b.hovered) {
		return false
	}
	b.heldTicks++
	if b.heldTicks == 1 {
		return true
	}
	return b.heldTicks > repeatDelayTicks && b.heldTicks%repeatEveryTicks == 0
}

func (b *button) draw(screen *ebiten.Image, base color.RGBA) {
	bg := base
	if b.pressed {
		bg = color.RGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: 255}
	} else if b.hovered {
		bg = color.RGBA{R: base.R - base.R/4, G: base.G - base.G/4, B: base.B - base.B/4, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 8 // approximate character width
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-12)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}

// spinner is a labeled numeric control with -/+ buttons. Edits are clamped
// to [min, max] before they reach the setter, so the setter never sees an
// out-of-range value.
type spinner struct {
	x, y  int
	label string

	step     float64
	min, max float64
	format   func(float64) string
	get      func() float64
	set      func(float64) error

	minus button
	plus  button
}

func newSpinner(x, y int, label string, step, min, max float64,
	format func(float64) string, get func() float64, set func(float64) error) *spinner {
	return &spinner{
		x: x, y: y,
		label:  label,
		step:   step,
		min:    min,
		max:    max,
		format: format,
		get:    get,
		set:    set,
		minus:  button{x: x + spinnerWidth - 2*spinnerButtonW - 6, y: y, w: spinnerButtonW, h: spinnerButtonH, label: "-"},
		plus:   button{x: x + spinnerWidth - spinnerButtonW, y: y, w: spinnerButtonW, h: spinnerButtonH, label: "+"},
	}
}

// update processes button input and applies the resulting edit. Holding
// Shift multiplies the step by 10. Returns the applied delta, 0 if none.
func (s *spinner) update(mx, my int) float64 {
	step := s.step
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		step *= 10
	}

	var dir float64
	if s.minus.fired(mx, my) {
		dir = -1
	}
	if s.plus.fired(mx, my) {
		dir = 1
	}
	if dir == 0 {
		return 0
	}

	cur := s.get()
	next := clamp(cur+dir*step, s.min, s.max)
	if next == cur {
		return 0
	}
	if err := s.set(next); err != nil {
		return 0
	}
	return next - cur
}

func (s *spinner) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.label, s.x, s.y+4)
	ebitenutil.DebugPrintAt(screen, s.format(s.get()), s.x+spinnerValueX, s.y+4)
	s.minus.draw(screen, buttonBase)
	s.plus.draw(screen, buttonBase)
}
