package main

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/tkamucheka/rt-rampage/params"
)

func newCmd_Benchmark() *cli.Command {
	var duration time.Duration
	return &cli.Command{
		Name:        "benchmark",
		Usage:       "Run the chain stepper for a fixed duration and report hashes/sec.",
		Description: "Measures chain-stepping throughput for one hash/charset/length configuration. Does not write a table file.",
		Flags: []cli.Flag{
			FlagHashType,
			FlagCharset,
			FlagMinLength,
			FlagMaxLength,
			FlagTableIndex,
			&cli.DurationFlag{
				Name:        "duration",
				Usage:       "how long to run before reporting",
				Value:       5 * time.Second,
				Destination: &duration,
			},
		},
		Action: func(c *cli.Context) error {
			p := params.Params{
				HashType:    c.String(FlagHashType.Name),
				CharsetName: c.String(FlagCharset.Name),
				MinLength:   c.Int(FlagMinLength.Name),
				MaxLength:   c.Int(FlagMaxLength.Name),
				TableIndex:  c.Int(FlagTableIndex.Name),
				ChainLength: 1,
				NumChains:   1,
			}
			ctx, err := p.Validate()
			if err != nil {
				return fmt.Errorf("invalid parameters: %w", err)
			}

			bar := progressbar.DefaultBytes(-1, "hashing")
			deadline := time.Now().Add(duration)
			var steps uint64
			for time.Now().Before(deadline) {
				ctx.SetIndex(steps % ctx.PlainSpaceTotal())
				ctx.IndexToPlain()
				if err := ctx.PlainToHash(); err != nil {
					return fmt.Errorf("benchmark: %w", err)
				}
				ctx.HashToIndex(0)
				steps++
				_ = bar.Add(1)
			}
			_ = bar.Close()

			elapsed := time.Since(deadline.Add(-duration))
			fmt.Printf("\n%d hashes in %s (%.0f hashes/sec)\n", steps, elapsed, float64(steps)/elapsed.Seconds())
			return nil
		},
	}
}
