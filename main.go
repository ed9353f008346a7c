package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tommykhoi/submitboggle-tommykhoi/config"
	"github.com/tommykhoi/submitboggle-tommykhoi/shell"
	"github.com/tommykhoi/submitboggle-tommykhoi/trie"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	dict := trie.New()
	if err := dict.LoadFile(cfg.DictionaryPath); err != nil {
		log.Fatal().Err(err).Msg("could not load dictionary")
	}
	log.Info().Int("words", dict.WordCount()).
		Str("file", cfg.DictionaryPath).Msg("dictionary ready")

	sc := shell.NewShellController(cfg, dict)
	sc.Loop()
}
