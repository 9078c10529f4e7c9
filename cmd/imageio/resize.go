package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
	"github.com/FunkyPizza/ImageIOLibrary/internal/pipeline"
)

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Resize an image with bilinear sampling",
	RunE:  runResize,
}

func init() {
	resizeCmd.Flags().StringP("input", "i", "", "Input image file")
	resizeCmd.Flags().StringP("output", "o", "", "Output image file")
	resizeCmd.Flags().Int("width", 0, "Target width in pixels")
	resizeCmd.Flags().Int("height", 0, "Target height in pixels")
	resizeCmd.MarkFlagRequired("input")
	resizeCmd.MarkFlagRequired("output")
	resizeCmd.MarkFlagRequired("width")
	resizeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	if width <= 0 || height <= 0 {
		return fmt.Errorf("target size must be positive, got %dx%d", width, height)
	}

	op := func(b bitmap.Bitmap) (bitmap.Bitmap, error) {
		return bitmap.Resize(b, width, height), nil
	}
	return runOps(inputPath, outputPath, []pipeline.Op{op})
}
