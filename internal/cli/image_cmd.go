package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aurumlife/aurum/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImageCmd(app *App) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Generate web-ready renditions of images",
	}

	process := &cobra.Command{
		Use:   "process FILE",
		Short: "Resize and re-encode an image across all presets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			base := filepath.Base(args[0])
			base = strings.TrimSuffix(base, filepath.Ext(base))

			result, err := app.Images.Process(context.Background(), content, base)
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = app.Config.Images.OutputDir
			}
			if dir == "" {
				dir = "."
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			for _, v := range result.Variants {
				if err := os.WriteFile(filepath.Join(dir, v.Filename), v.Data, 0o644); err != nil {
					return err
				}
			}

			fmt.Print(formatter.FormatImageResult(result))
			fmt.Printf("Wrote %d file(s) to %s\n", len(result.Variants), dir)
			return nil
		},
	}
	process.Flags().StringVar(&outDir, "out", "", "Output directory (defaults to config)")

	cmd.AddCommand(process)
	return cmd
}
