package main

import (
	"flag"
	"log"
	"os"

	"codeberg.org/tslocum/bgammon-rules/pkg/console"
	"github.com/chzyer/readline"
	"go.uber.org/zap"
)

func main() {
	cfg, err := console.LoadConfig()
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	var (
		rollStatistics bool
		statisticRolls int
	)
	flag.StringVar(&cfg.Player1, "player1", cfg.Player1, "name of the player moving from 0 toward 23 (X)")
	flag.StringVar(&cfg.Player2, "player2", cfg.Player2, "name of the player moving from 23 toward 0 (O)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed the dice for a reproducible game (0 rolls randomly)")
	flag.StringVar(&cfg.Language, "lang", cfg.Language, "language of console messages")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn or error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console or json)")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to file instead of standard error")
	flag.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "command history file")
	flag.BoolVar(&rollStatistics, "statistics", false, "print dice roll statistics and exit")
	flag.IntVar(&statisticRolls, "statistics-rolls", 10000000, "number of rolls made by -statistics")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error: %s", err)
	}

	if rollStatistics {
		console.PrintRollStatistics(os.Stdout, cfg.Dice(), statisticRolls, cfg.LanguageTag())
		return
	}

	logger, closeLogger, err := console.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	defer closeLogger()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bgammon> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	defer rl.Close()

	logger.Info("console started", zap.String("player1", cfg.Player1), zap.String("player2", cfg.Player2), zap.Int64("seed", cfg.Seed))

	s := console.NewSession(cfg, cfg.Dice(), rl, rl.Stdout(), logger)
	if err := s.Run(); err != nil {
		logger.Error("session ended", zap.Error(err))
		closeLogger()
		os.Exit(1)
	}
}
