package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/sitegen/internal/adapters/fs"
	"github.com/3-lines-studio/sitegen/internal/usecase"
)

var generateCmd = &cobra.Command{
	Use:   "generate [input]",
	Short: "Generate the front end source files (same as running sitegen without a command)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, output, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	inputPath := cfg.InputPath(args)
	data, err := readInput(inputPath)
	if err != nil {
		return err
	}

	var target usecase.FileSystem = fs.NewOSFileSystem()
	mem := fs.NewMemFileSystem()
	if cfg.DryRun {
		target = mem
	}
	slog.Debug("generating", "input", inputPath, "root", cfg.Root, "dryRun", cfg.DryRun, "unchecked", cfg.Unchecked)

	service := usecase.NewGenerateService(target, output)
	result := service.Generate(usecase.GenerateInput{
		InputPath: inputPath,
		Data:      data,
		Root:      cfg.Root,
		Unchecked: cfg.Unchecked,
	})
	if result.Error != nil {
		output.PrintError("%v", result.Error)
		return errReported
	}

	if cfg.DryRun {
		output.PrintWarning("Dry run: %d file(s) were not written", len(mem.Paths()))
		return nil
	}
	output.PrintDone("Generation completed successfully")
	return nil
}
