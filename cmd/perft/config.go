package main

import "github.com/BurntSushi/toml"

// runConfig holds the defaults an optional TOML file can override, so a
// repeated benchmarking setup (a fixed FEN, worker count, depth) doesn't
// have to be retyped as flags every run.
//
//	fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
//	depth = 5
//	workers = 4
type runConfig struct {
	FEN     string `toml:"fen"`
	Depth   int    `toml:"depth"`
	Workers int    `toml:"workers"`
}

func loadConfig(path string) (runConfig, error) {
	var cfg runConfig
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
