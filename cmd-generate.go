package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/tkamucheka/rt-rampage/params"
	"github.com/tkamucheka/rt-rampage/rterrors"
	"github.com/tkamucheka/rt-rampage/rtrand"
	"github.com/tkamucheka/rt-rampage/tablefile"
)

func newCmd_Generate() *cli.Command {
	return &cli.Command{
		Name:        "generate",
		Usage:       "Generate (or resume) a rainbow table chain file.",
		Description: "Generate (or resume) a rainbow table chain file for a single hash/charset/length/table-index configuration.",
		ArgsUsage:   "--hashtype=<type> --charset=<name> --minlength=<n> --maxlength=<n> --chainlength=<n> --numchains=<n>",
		Flags: []cli.Flag{
			FlagHashType,
			FlagCharset,
			FlagMinLength,
			FlagMaxLength,
			FlagTableIndex,
			FlagChainLength,
			FlagNumChains,
			FlagPart,
			FlagOutDir,
			FlagWorkers,
			FlagSeed,
		},
		Action: func(c *cli.Context) error {
			p := params.Params{
				HashType:    c.String(FlagHashType.Name),
				CharsetName: c.String(FlagCharset.Name),
				MinLength:   c.Int(FlagMinLength.Name),
				MaxLength:   c.Int(FlagMaxLength.Name),
				TableIndex:  c.Int(FlagTableIndex.Name),
				ChainLength: c.Int(FlagChainLength.Name),
				NumChains:   c.Uint64(FlagNumChains.Name),
				Part:        c.String(FlagPart.Name),
			}

			ctx, err := p.Validate()
			if err != nil {
				return fmt.Errorf("invalid parameters: %w", err)
			}

			numWorkers := c.Int(FlagWorkers.Name)
			if numWorkers <= 0 {
				numWorkers = runtime.NumCPU()
			}

			seed, err := resolveSeed(c)
			if err != nil {
				return err
			}

			path := filepath.Join(c.String(FlagOutDir.Name), tablefile.FormatFilename(p))
			generator := &tablefile.Generator{
				Path:       path,
				Params:     p,
				Context:    ctx,
				NumWorkers: numWorkers,
				BaseSeed:   seed,
			}

			err = generator.Run(c.Context)
			if errors.Is(err, rterrors.ErrAlreadyFinished) {
				klog.Info(err)
				return nil
			}
			return err
		},
	}
}

// resolveSeed returns the user-supplied --seed, or draws one from the OS
// CSPRNG and logs it so a run can be reproduced later.
func resolveSeed(c *cli.Context) (uint64, error) {
	if c.IsSet(FlagSeed.Name) {
		return c.Uint64(FlagSeed.Name), nil
	}
	src, err := rtrand.NewFromCryptoRand()
	if err != nil {
		return 0, fmt.Errorf("failed to seed CSPRNG: %w", err)
	}
	seed := src.Uint64()
	klog.Infof("using random seed %d (pass --seed=%d to reproduce this run)", seed, seed)
	return seed, nil
}
