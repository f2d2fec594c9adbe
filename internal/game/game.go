// Package game is the ebiten presentation layer: it renders the schematic
// and panels and feeds user input into the circuit state. All state access
// happens on the update goroutine.
package game

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"rcvis/internal/circuit"
	"rcvis/internal/config"
	"rcvis/internal/logger"
)

// Layout, relative to the top-left corner.
const (
	diagramX = 20
	diagramY = 20
	diagramW = 600
	diagramH = 560

	panelX         = 640
	panelY         = 20
	spinnerTop     = 48
	spinnerGap     = 36
	spinnerWidth   = 344
	spinnerButtonW = 28
	spinnerButtonH = 24
	spinnerValueX  = 150

	switchRowY    = 168
	switchButtonW = 120
	switchButtonH = 32

	infoY = 240

	exportY       = 420
	exportButtonW = 120
	exportButtonH = 36

	statusMargin = 28

	// Spinner increments per click.
	emfStep         = 0.5 // V
	resistanceStep  = 10.0
	capacitanceStep = 10.0
)

var (
	windowBG   = color.RGBA{R: 18, G: 20, B: 26, A: 255}
	buttonBase = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	switchOpen = color.RGBA{R: 200, G: 62, B: 52, A: 255}
	switchShut = color.RGBA{R: 66, G: 165, B: 80, A: 255}
)

// Game implements ebiten.Game over a single circuit.State.
type Game struct {
	width, height int

	state *circuit.State
	log   *logger.Logger

	// Refreshed by the state's change listener; Draw never touches live state.
	snap circuit.Snapshot
	tau  float64

	dia       diagram
	spinners  []*spinner
	switchBtn button
	exportBtn button

	click  *Clicker
	demo   *demoSequencer
	status string
}

// New builds the presentation layer around st and registers its redraw
// listener. click may be nil to disable the toggle sound.
func New(st *circuit.State, cfg config.Config, log *logger.Logger, demoMode bool, click *Clicker) *Game {
	g := &Game{
		width:  cfg.WindowWidth,
		height: cfg.WindowHeight,
		state:  st,
		log:    log,
		snap:   st.Snapshot(),
		tau:    st.TimeConstant(),
		dia:    diagram{x: diagramX, y: diagramY, w: diagramW, h: diagramH},
		click:  click,
		status: "Adjust parameters with -/+ (Shift for x10). Space toggles the switch. Esc quits.",
	}

	st.Notify(func() {
		g.snap = st.Snapshot()
		g.tau = st.TimeConstant()
		g.log.Debugw("state changed",
			"emf_v", g.snap.EMF,
			"resistance_ohm", g.snap.Resistance,
			"capacitance_uf", g.snap.Capacitance,
			"switch_closed", g.snap.SwitchClosed,
			"tau_s", g.tau,
		)
	})

	g.spinners = []*spinner{
		newSpinner(panelX, spinnerTop, "EMF (Voltage)", emfStep, circuit.MinEMF, circuit.MaxEMF,
			circuit.FormatVolts, st.EMF, st.SetEMF),
		newSpinner(panelX, spinnerTop+spinnerGap, "Resistance", resistanceStep, circuit.MinResistance, circuit.MaxResistance,
			circuit.FormatOhms, st.Resistance, st.SetResistance),
		newSpinner(panelX, spinnerTop+2*spinnerGap, "Capacitance", capacitanceStep, circuit.MinCapacitance, circuit.MaxCapacitance,
			circuit.FormatMicrofarads, st.Capacitance, st.SetCapacitance),
	}
	g.switchBtn = button{x: panelX + spinnerValueX, y: switchRowY, w: switchButtonW, h: switchButtonH}
	g.exportBtn = button{x: panelX, y: exportY, w: exportButtonW, h: exportButtonH, label: "Export"}

	if demoMode {
		g.demo = newDemoSequencer(cfg.DemoInterval)
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.demo != nil && !g.demo.done() {
		if name := g.demo.update(g.state, g.log); name != "" {
			g.status = "Demo: " + name
		}
		if g.demo.done() {
			g.status = "Demo complete. You can now interact with the controls."
		}
	}

	mx, my := ebiten.CursorPosition()

	for _, sp := range g.spinners {
		sp.update(mx, my)
	}

	if g.switchBtn.clicked(mx, my) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleSwitch()
	}

	if g.exportBtn.clicked(mx, my) {
		g.export()
	}

	return nil
}

func (g *Game) toggleSwitch() {
	closed := !g.state.SwitchClosed()
	g.state.SetSwitch(closed)
	g.click.play(closed)
}

func (g *Game) export() {
	path, err := exportDialog(g.snap, g.tau)
	switch {
	case err == nil:
		g.status = "Exported to " + path
		g.log.Infow("exported time constant table", "path", path)
	case errors.Is(err, errExportCanceled):
		g.status = "Export canceled."
	default:
		g.status = "Export failed."
		g.log.Errorw("export failed", "err", err)
		if derr := zenity.Error(err.Error(), zenity.Title("Export Failed")); derr != nil {
			g.log.Warnw("error dialog failed", "err", derr)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowBG)

	g.dia.draw(screen, g.snap)

	ebitenutil.DebugPrintAt(screen, "Circuit Parameters", panelX, panelY)
	for _, sp := range g.spinners {
		sp.draw(screen)
	}

	ebitenutil.DebugPrintAt(screen, "Switch:", panelX, switchRowY+10)
	if g.snap.SwitchClosed {
		g.switchBtn.label = "CLOSED"
		g.switchBtn.draw(screen, switchShut)
	} else {
		g.switchBtn.label = "OPEN"
		g.switchBtn.draw(screen, switchOpen)
	}

	g.drawInfo(screen)
	g.exportBtn.draw(screen, buttonBase)

	ebitenutil.DebugPrintAt(screen, g.status, diagramX, g.height-statusMargin)
}

func (g *Game) drawInfo(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Circuit Information", panelX, infoY)
	ebitenutil.DebugPrintAt(screen, "Time Constant (tau): "+circuit.FormatSeconds(g.tau), panelX, infoY+24)
	lines := []string{
		"The RC time constant (tau = R x C) determines how",
		"quickly the capacitor charges and discharges.",
		"",
		"  At tau:  ~63.2% charged",
		"  At 5tau: ~99.3% charged (fully charged)",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, panelX, infoY+52+i*16)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
