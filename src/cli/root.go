// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/hlx/src/clean"
	"github.com/H0llyW00dzZ/hlx/src/config"
	"github.com/H0llyW00dzZ/hlx/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/hlx/src/logger"
	"github.com/spf13/cobra"
)

// options holds the flag values shared by the root command and its subcommands.
type options struct {
	configFile string
	logLevel   string
	logsDir    string
	logFiles   []string

	directory string
	targetDir string
	cacheDir  string
	dryRun    bool
}

// Execute runs the root command against the process-wide logger registry.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version, logger.Default).ExecuteContext(ctx)
}

// NewRootCommand builds the hlx root command. Loggers are taken from registry.
func NewRootCommand(version string, registry *logger.Registry) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "hlx build tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "path to configuration file (JSON or YAML, default: $"+config.EnvConfigFile+")")
	pf.StringVar(&opts.logLevel, "log-level", "", "console log level: debug, info, warn, error (default: info)")
	pf.StringVar(&opts.logsDir, "logs-dir", "", "directory of the default log file (default: logs)")
	pf.StringArrayVar(&opts.logFiles, "log-file", nil, `log output target, repeatable; "-" is standard error`)

	rootCmd.AddCommand(newCleanCommand(opts, registry))
	return rootCmd
}

func newCleanCommand(opts *options, registry *logger.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build output and cache directories",
		Long: `Remove the build output directory (.hlx/build) and the cache directory
(.hlx/cache) of the working directory. Missing directories are skipped; a
directory that cannot be removed is reported and does not stop the other.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, opts, registry)
		},
	}

	cmd.Flags().StringVarP(&opts.directory, "dir", "C", "", "working directory (default: current directory)")
	cmd.Flags().StringVar(&opts.targetDir, "target-dir", "", "build output directory (default: <dir>/.hlx/build)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "cache directory (default: <dir>/.hlx/cache)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show what would be removed without removing anything")

	return cmd
}

// load reads the configuration file and applies the flags set on cmd.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("logs-dir") {
		cfg.Logging.LogsDir = o.logsDir
	}
	if flags.Changed("log-file") {
		cfg.Logging.LogFile = logger.Targets(o.logFiles)
	}
	if flags.Changed("dir") {
		cfg.Clean.Directory = o.directory
	}
	if flags.Changed("target-dir") {
		cfg.Clean.TargetDir = o.targetDir
	}
	if flags.Changed("cache-dir") {
		cfg.Clean.CacheDir = o.cacheDir
	}
	return cfg, nil
}

func runClean(cmd *cobra.Command, opts *options, registry *logger.Registry) error {
	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}

	c := clean.New(registry.GetOrCreate(cfg.Logging)).
		WithDirectory(cfg.Clean.Directory).
		WithTargetDir(cfg.Clean.TargetDir).
		WithCacheDir(cfg.Clean.CacheDir)

	if opts.dryRun {
		_, err := fmt.Fprint(cmd.OutOrStdout(), clean.RenderPlan(c.Plan()))
		return err
	}

	c.Run()
	return nil
}
