package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/sitegen/internal/usecase"
)

var checkCmd = &cobra.Command{
	Use:   "check [input]",
	Short: "Validate a site description without generating anything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, output, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		inputPath := cfg.InputPath(args)
		data, err := readInput(inputPath)
		if err != nil {
			return err
		}

		result := usecase.NewCheckService(output).Check(usecase.CheckInput{
			InputPath: inputPath,
			Data:      data,
		})
		if result.Error != nil {
			if result.Site == nil {
				output.PrintError("%v", result.Error)
			}
			output.PrintDone(result.Summary())
			return errReported
		}

		output.PrintDone(result.Summary())
		return nil
	},
}
