package config

import "github.com/namsral/flag"

type Config struct {
	DictionaryPath string
	CubeFile       string
	BoardSize      int
	Debug          bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("boggle", flag.ContinueOnError)
	fs.StringVar(&c.DictionaryPath, "dictionary-path", "./data/words.txt", "file holding the word list, one word per line")
	fs.StringVar(&c.CubeFile, "cube-file", "./data/cubes.txt", "file holding the letter cubes, one cube of six faces per line")
	fs.IntVar(&c.BoardSize, "board-size", 4, "the default board dimension")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging on")
	err := fs.Parse(args)
	return err
}
