// Package config loads runtime settings from configs/config.yml via viper.
// Every key has a default, so the application runs without a config file.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application settings.
type Config struct {
	WindowWidth  int
	WindowHeight int

	// Startup circuit parameters shown when the window opens.
	StartEMF          float64 // V
	StartResistance   float64 // Ω
	StartCapacitance  float64 // µF
	StartSwitchClosed bool

	LogLevel     string
	SoundEnabled bool
	DemoInterval time.Duration
}

func setDefaults() {
	viper.SetDefault("window.width", 1024)
	viper.SetDefault("window.height", 640)

	viper.SetDefault("startup.emf", 10.0)
	viper.SetDefault("startup.resistance", 1000.0)
	viper.SetDefault("startup.capacitance", 100.0)
	viper.SetDefault("startup.switch_closed", false)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("sound.enabled", true)
	viper.SetDefault("demo.interval", "3s")
}

// Load reads configs/config.yml if present and returns the effective
// configuration. A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	setDefaults()

	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	return Config{
		WindowWidth:       viper.GetInt("window.width"),
		WindowHeight:      viper.GetInt("window.height"),
		StartEMF:          viper.GetFloat64("startup.emf"),
		StartResistance:   viper.GetFloat64("startup.resistance"),
		StartCapacitance:  viper.GetFloat64("startup.capacitance"),
		StartSwitchClosed: viper.GetBool("startup.switch_closed"),
		LogLevel:          viper.GetString("log.level"),
		SoundEnabled:      viper.GetBool("sound.enabled"),
		DemoInterval:      viper.GetDuration("demo.interval"),
	}, nil
}
