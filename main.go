package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Hendrin-Mckay/odingame/assets"
	"github.com/Hendrin-Mckay/odingame/config"
	"github.com/Hendrin-Mckay/odingame/engine"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "game.toml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return err
		}
		// No config file is fine for the demo; run on defaults.
		cfg = config.Defaults()
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	cache := assets.NewCache(log)
	eng := engine.New(cfg, cache, log)

	audio := engine.NewAudioPlayer(cache, log)
	audio.SetVolume(cfg.Audio.Volume)
	if cfg.Audio.Music != "" {
		if err := audio.PlayMusic(cfg.Audio.Music); err != nil {
			log.Warn("music disabled", zap.Error(err))
		}
	}

	play, err := NewPlayScene(cfg, cache, log)
	if err != nil {
		return err
	}
	defer play.Close()
	eng.Scenes().Push(play)

	return eng.Run()
}

// newLogger builds the process logger from config: a colored console logger
// for development or a JSON one for structured capture.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
