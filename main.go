package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/aaronzipp/classroom-arcade/internal/config"
	"github.com/aaronzipp/classroom-arcade/internal/handlers"
	"github.com/aaronzipp/classroom-arcade/internal/hangman"
	"github.com/aaronzipp/classroom-arcade/internal/logging"
	"github.com/aaronzipp/classroom-arcade/internal/screen"
	"github.com/aaronzipp/classroom-arcade/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer logger.Sync()

	words, err := loadWords(cfg, logger)
	if err != nil {
		log.Fatal("Failed to load words: ", err)
	}

	ctx := &handlers.Context{
		SessionStore: store.NewSessionStore(),
		Config:       cfg,
		Logger:       logger,
		Words:        words,
	}
	if cfg.Seeded {
		ctx.Selector = hangman.SeededSelector(cfg.Seed)
	}

	s, err := screen.Open()
	if err != nil {
		log.Fatal("Failed to open terminal: ", err)
	}

	logger.Info("arcade starting", zap.Int("max_misses", cfg.MaxMisses), zap.Int("words", words.Len()))
	err = screen.New(s, handlers.NewRouter(ctx), logger).Run()
	s.Fini()
	if err != nil {
		logger.Error("arcade stopped", zap.Error(err))
		log.Fatal(err)
	}
	logger.Info("arcade stopped", zap.Int("sessions", ctx.SessionStore.Len()))
}

// loadWords returns the configured word list, or the built-in one
func loadWords(cfg *config.Config, logger *zap.Logger) (hangman.WordPool, error) {
	if cfg.WordsFile == "" {
		return hangman.DefaultWordPool(), nil
	}
	pool, err := hangman.LoadWordPool(cfg.WordsFile)
	if err != nil {
		return hangman.WordPool{}, err
	}
	logger.Info("loaded words", zap.String("file", cfg.WordsFile), zap.Int("count", pool.Len()))
	return pool, nil
}
