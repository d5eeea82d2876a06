package main

import (
	"flag"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bent101/wordle-entropy/search"
)

type config struct {
	lang       string
	dir        string
	workers    int
	top        int
	progress   bool
	demoAnswer string
	logLevel   string
}

// loadConfig reads .env and the environment, then lets flags override them.
func loadConfig(args []string) (config, []string, error) {
	_ = godotenv.Load()

	cfg := config{
		lang:       getEnv("WORDLE_LANG", "en"),
		dir:        getEnv("WORDLE_DIR", "io"),
		workers:    getEnvInt("WORDLE_WORKERS", runtime.NumCPU()),
		top:        getEnvInt("WORDLE_TOP", search.DefaultLimit),
		progress:   getEnvBool("WORDLE_PROGRESS", true),
		demoAnswer: getEnv("WORDLE_DEMO_ANSWER", "gerne"),
		logLevel:   getEnv("LOG_LEVEL", "info"),
	}

	fs := flag.NewFlagSet("wordle-entropy", flag.ContinueOnError)
	fs.StringVar(&cfg.lang, "lang", cfg.lang, "word list language (en or de)")
	fs.StringVar(&cfg.dir, "dir", cfg.dir, "directory holding the word lists")
	fs.IntVar(&cfg.workers, "workers", cfg.workers, "goroutines used to score guesses")
	fs.IntVar(&cfg.top, "top", cfg.top, "number of guesses printed by rank")
	fs.BoolVar(&cfg.progress, "progress", cfg.progress, "show a progress bar while scoring")
	fs.StringVar(&cfg.demoAnswer, "answer", cfg.demoAnswer, "answer used by the demo command")
	fs.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "zerolog level")
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	return cfg, fs.Args(), nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("invalid log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Int("default", fallback).Msg("invalid int in environment")
		return fallback
	}
	return i
}

func getEnvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		log.Warn().Str("key", key).Err(err).Bool("default", fallback).Msg("invalid bool in environment")
		return fallback
	}
	return b
}
