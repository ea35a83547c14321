package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/sitegen/internal/adapters/fs"
	"github.com/3-lines-studio/sitegen/internal/usecase"
)

var initProjectName string

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter mapping.json",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, output, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		result := usecase.NewInitService(fs.NewOSFileSystem(), output).InitProject(usecase.InitInput{
			Dir:         dir,
			ProjectName: initProjectName,
		})
		if result.Error != nil {
			output.PrintError("%v", result.Error)
			return errReported
		}

		output.PrintDone("Next: sitegen " + result.Created[0])
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initProjectName, "name", "", "project name (default is the directory name)")
}
