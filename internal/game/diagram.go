package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rcvis/internal/circuit"
)

// diagram renders the two-loop RC schematic:
//
//	charging loop (switch closed):  EMF -> R -> C -> switch -> EMF
//	discharging loop (switch open): R <-> C
//
// Components sit on a rectangle: EMF on the left side, resistor on the top
// wire, capacitor on the right side, switch on the bottom wire.
type diagram struct {
	x, y, w, h int
}

var (
	diagramBG     = color.RGBA{R: 34, G: 38, B: 48, A: 255}
	diagramBorder = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	wireColor     = color.RGBA{R: 220, G: 224, B: 232, A: 255}
	chargeColor   = color.RGBA{R: 80, G: 200, B: 105, A: 255}
	dischargeCol  = color.RGBA{R: 230, G: 90, B: 90, A: 255}
)

func (d *diagram) draw(screen *ebiten.Image, snap circuit.Snapshot) {
	vector.DrawFilledRect(screen, float32(d.x), float32(d.y), float32(d.w), float32(d.h), diagramBG, false)
	vector.StrokeRect(screen, float32(d.x), float32(d.y), float32(d.w), float32(d.h), 2, diagramBorder, false)

	// Key positions of the circuit rectangle.
	margin := 50
	leftX := float32(d.x + margin + 50)
	rightX := float32(d.x + d.w - margin - 50)
	topY := float32(d.y + margin + 30)
	bottomY := float32(d.y + d.h - margin - 30)
	centerY := (topY + bottomY) / 2
	midX := (leftX + rightX) / 2
	switchX := leftX + 110

	d.drawWires(screen, snap.SwitchClosed, leftX, rightX, topY, bottomY, centerY, midX, switchX)
	d.drawEMF(screen, leftX, centerY)
	d.drawResistor(screen, midX, topY)
	d.drawCapacitor(screen, rightX, centerY)
	d.drawSwitch(screen, snap.SwitchClosed, switchX, bottomY)
	d.drawLabels(screen, snap, leftX, rightX, topY, bottomY, centerY, midX, switchX)
	d.drawLoopIndicator(screen, snap.SwitchClosed, centerY, midX)
}

func (d *diagram) drawWires(screen *ebiten.Image, closed bool, leftX, rightX, topY, bottomY, centerY, midX, switchX float32) {
	line := func(x1, y1, x2, y2 float32) {
		vector.StrokeLine(screen, x1, y1, x2, y2, 2, wireColor, false)
	}

	// Top path: EMF top plate up, across the resistor, down to the capacitor.
	line(leftX, centerY-30, leftX, topY)
	line(leftX, topY, midX-50, topY)
	line(midX+50, topY, rightX, topY)
	line(rightX, topY, rightX, centerY-10)

	// Bottom path: capacitor down, across to the switch.
	line(rightX, centerY+10, rightX, bottomY)
	line(rightX, bottomY, switchX+30, bottomY)

	// Switch to EMF: complete only while the switch is closed.
	if closed {
		line(switchX-30, bottomY, leftX, bottomY)
	} else {
		line(switchX-30, bottomY, switchX-60, bottomY)
	}
	line(leftX, bottomY, leftX, centerY+30)
}

// drawEMF draws the source symbol: a long positive plate above a short
// negative plate.
func (d *diagram) drawEMF(screen *ebiten.Image, x, y float32) {
	vector.StrokeLine(screen, x-20, y-30, x+20, y-30, 3, wireColor, false)
	vector.StrokeLine(screen, x-10, y+30, x+10, y+30, 2, wireColor, false)
	ebitenutil.DebugPrintAt(screen, "+", int(x)-35, int(y)-38)
	ebitenutil.DebugPrintAt(screen, "-", int(x)-35, int(y)+22)
}

func (d *diagram) drawResistor(screen *ebiten.Image, x, y float32) {
	const boxW, boxH = 60, 16
	vector.StrokeRect(screen, x-boxW/2, y-boxH/2, boxW, boxH, 2, wireColor, false)
}

// drawCapacitor draws the two parallel plates.
func (d *diagram) drawCapacitor(screen *ebiten.Image, x, y float32) {
	vector.StrokeLine(screen, x-20, y-10, x+20, y-10, 3, wireColor, false)
	vector.StrokeLine(screen, x-20, y+10, x+20, y+10, 3, wireColor, false)
}

// drawSwitch draws the contact points and the arm: flat when closed, raised
// at an angle when open.
func (d *diagram) drawSwitch(screen *ebiten.Image, closed bool, x, y float32) {
	vector.DrawFilledCircle(screen, x-30, y, 4, wireColor, false)
	vector.DrawFilledCircle(screen, x+30, y, 4, wireColor, false)
	if closed {
		vector.StrokeLine(screen, x-26, y, x+26, y, 3, chargeColor, false)
	} else {
		vector.StrokeLine(screen, x-26, y, x+20, y-18, 3, dischargeCol, false)
	}
}

func (d *diagram) drawLabels(screen *ebiten.Image, snap circuit.Snapshot, leftX, rightX, topY, bottomY, centerY, midX, switchX float32) {
	ebitenutil.DebugPrintAt(screen, "EMF: "+circuit.FormatVolts(snap.EMF), int(leftX)-40, int(centerY)+40)
	ebitenutil.DebugPrintAt(screen, "R: "+circuit.FormatOhms(snap.Resistance), int(midX)-40, int(topY)-26)
	ebitenutil.DebugPrintAt(screen, "C: "+circuit.FormatMicrofarads(snap.Capacitance), int(rightX)-20, int(centerY)-34)

	switchText := "Switch: OPEN"
	if snap.SwitchClosed {
		switchText = "Switch: CLOSED"
	}
	ebitenutil.DebugPrintAt(screen, switchText, int(switchX)-40, int(bottomY)+14)
}

func (d *diagram) drawLoopIndicator(screen *ebiten.Image, closed bool, centerY, midX float32) {
	x := int(midX) - 58
	y := int(centerY) - 20
	if closed {
		vector.DrawFilledRect(screen, float32(x-14), float32(y+3), 8, 8, chargeColor, false)
		ebitenutil.DebugPrintAt(screen, "Charging Loop", x, y)
		ebitenutil.DebugPrintAt(screen, "(EMF -> R -> C)", x, y+16)
	} else {
		vector.DrawFilledRect(screen, float32(x-14), float32(y+3), 8, 8, dischargeCol, false)
		ebitenutil.DebugPrintAt(screen, "Discharging Loop", x, y)
		ebitenutil.DebugPrintAt(screen, "(R <-> C)", x, y+16)
	}
}
