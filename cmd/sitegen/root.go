package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/sitegen/internal/adapters/cli"
	"github.com/3-lines-studio/sitegen/internal/config"
)

// errReported marks failures that were already printed to the user.
var errReported = errors.New("reported")

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sitegen [input]",
	Short: "Generate an Angular front end from a site description",
	Long: `sitegen reads a site description (mapping.json by default) and writes
standalone components, pages, a route table, a navigation shell and a global
stylesheet into <root>/<projectName>. Existing generated files are overwritten.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./sitegen.yaml)")
	flags.String("root", "", "directory the project folder is created in (default is the working directory)")
	flags.Bool("unchecked", false, "skip reference validation and generate as-is")
	flags.Bool("dry-run", false, "generate in memory and list the files without writing them")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolP("verbose", "v", false, "log debug details to stderr")

	rootCmd.AddCommand(generateCmd, checkCmd, initCmd)
}

func loadConfig(cmd *cobra.Command) (config.Config, *cli.Output, error) {
	cfg, err := config.Load(cmd.Flags(), cfgFile)
	if err != nil {
		return config.Config{}, nil, err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	output := cli.NewOutput()
	if cfg.NoColor {
		output.DisableColors()
	}
	return cfg, output, nil
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site description: %w", err)
	}
	return data, nil
}
