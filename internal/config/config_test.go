package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WindowWidth != 1024 || cfg.WindowHeight != 640 {
		t.Fatalf("window defaults = %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.StartEMF != 10 {
		t.Fatalf("startup.emf = %g, want 10", cfg.StartEMF)
	}
	if cfg.StartResistance != 1000 {
		t.Fatalf("startup.resistance = %g, want 1000", cfg.StartResistance)
	}
	if cfg.StartCapacitance != 100 {
		t.Fatalf("startup.capacitance = %g, want 100", cfg.StartCapacitance)
	}
	if cfg.StartSwitchClosed {
		t.Fatalf("startup.switch_closed should default to false")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log.level = %q, want info", cfg.LogLevel)
	}
	if !cfg.SoundEnabled {
		t.Fatalf("sound.enabled should default to true")
	}
	if cfg.DemoInterval != 3*time.Second {
		t.Fatalf("demo.interval = %v, want 3s", cfg.DemoInterval)
	}
}
