package main

import (
	"flag"
	"fmt"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

// newKlogFlags wires klog's verbosity/output controls into the CLI flag
// surface, each one forwarded into klog's own flag.FlagSet.
func newKlogFlags() []cli.Flag {
	fs := flag.NewFlagSet("klog", flag.PanicOnError)
	klog.InitFlags(fs)

	fs.Set("v", "2")
	fs.Set("logtostderr", "true")

	return []cli.Flag{
		&cli.IntFlag{
			Name:    "v",
			Usage:   "number for the log level verbosity",
			EnvVars: []string{"RTRAMPAGE_V"},
			Value:   2,
			Action: func(cctx *cli.Context, v int) error {
				return fs.Set("v", fmt.Sprint(v))
			},
		},
		&cli.BoolFlag{
			Name:    "logtostderr",
			Usage:   "log to standard error instead of files",
			EnvVars: []string{"RTRAMPAGE_LOGTOSTDERR"},
			Value:   true,
			Action: func(cctx *cli.Context, v bool) error {
				return fs.Set("logtostderr", fmt.Sprint(v))
			},
		},
		&cli.StringFlag{
			Name:    "log_dir",
			Usage:   "if non-empty, write log files in this directory (no effect when -logtostderr=true)",
			EnvVars: []string{"RTRAMPAGE_LOG_DIR"},
			Action: func(cctx *cli.Context, v string) error {
				if v != "" {
					return fs.Set("log_dir", v)
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:    "vmodule",
			Usage:   "comma-separated list of pattern=N settings for file-filtered logging",
			EnvVars: []string{"RTRAMPAGE_VMODULE"},
			Action: func(cctx *cli.Context, v string) error {
				if v != "" {
					return fs.Set("vmodule", v)
				}
				return nil
			},
		},
	}
}
