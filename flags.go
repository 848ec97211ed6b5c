package main

import "github.com/urfave/cli/v2"

// Flags shared by the generate and benchmark commands (spec §6).
var (
	FlagHashType = &cli.StringFlag{
		Name:     "hashtype",
		Usage:    "hash routine, one of: md5, sha1, blake2b-256, blake2s-256",
		Required: true,
	}
	FlagCharset = &cli.StringFlag{
		Name:     "charset",
		Usage:    "charset name, see the charset package for the catalog",
		Required: true,
	}
	FlagMinLength = &cli.IntFlag{
		Name:     "minlength",
		Usage:    "minimum plaintext length",
		Required: true,
	}
	FlagMaxLength = &cli.IntFlag{
		Name:     "maxlength",
		Usage:    "maximum plaintext length",
		Required: true,
	}
	FlagTableIndex = &cli.IntFlag{
		Name:  "tableindex",
		Usage: "table index, offsets the reduction function",
		Value: 0,
	}
	FlagChainLength = &cli.IntFlag{
		Name:     "chainlength",
		Usage:    "number of reduction columns per chain",
		Required: true,
	}
	FlagNumChains = &cli.Uint64Flag{
		Name:     "numchains",
		Usage:    "number of chains in the table",
		Required: true,
	}
	FlagPart = &cli.StringFlag{
		Name:  "part",
		Usage: "arbitrary part/run label embedded in the table filename",
		Value: "part0",
	}
	FlagOutDir = &cli.StringFlag{
		Name:  "outdir",
		Usage: "directory the table file is written into",
		Value: ".",
	}
	FlagWorkers = &cli.IntFlag{
		Name:  "w",
		Usage: "number of worker goroutines",
	}
	FlagSeed = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "CSPRNG seed; omit for entropy from the OS, set for reproducible output across runs",
	}
)
