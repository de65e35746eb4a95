package main

import (
	"os"

	"nbxschema/config"
	"nbxschema/internal/nobitex/inspect"
	"nbxschema/logger"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	data, err := os.ReadFile(cfg.Input.Path)
	if err != nil {
		log.Fatal("failed to read input document", zap.Error(err))
	}

	report, err := inspect.New(log).Inspect(inspect.Kind(cfg.Input.Kind), data)
	if err != nil {
		log.Fatal("inspection failed", zap.Error(err))
	}

	log.Info("document inspected",
		zap.String("kind", string(report.Kind)),
		zap.Bool("valid", report.Valid),
		zap.Int("items", report.Items),
		zap.Int("problems", report.Problems))

	if !report.Valid {
		log.Sync()
		os.Exit(1)
	}
}
