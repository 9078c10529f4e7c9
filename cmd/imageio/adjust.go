package main

import (
	"github.com/spf13/cobra"

	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
	"github.com/FunkyPizza/ImageIOLibrary/internal/pipeline"
	"github.com/FunkyPizza/ImageIOLibrary/internal/tone"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Adjust hue, saturation, luminance, contrast or brightness",
	RunE:  runAdjust,
}

func init() {
	adjustCmd.Flags().StringP("input", "i", "", "Input image file")
	adjustCmd.Flags().StringP("output", "o", "", "Output image file")
	adjustCmd.Flags().Float64("hue", 0, "Hue shift in degrees, wraps at 360")
	adjustCmd.Flags().Float64("saturation", 1, "Saturation multiplier")
	adjustCmd.Flags().Float64("luminance", 1, "Luminance multiplier")
	adjustCmd.Flags().Float64("contrast", 1, "Contrast on [0,2], 1 = unchanged")
	adjustCmd.Flags().Float64("brightness", 1, "Brightness on [0,2], 1 = unchanged")
	adjustCmd.MarkFlagRequired("input")
	adjustCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(adjustCmd)
}

func runAdjust(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	hue, _ := cmd.Flags().GetFloat64("hue")
	saturation, _ := cmd.Flags().GetFloat64("saturation")
	luminance, _ := cmd.Flags().GetFloat64("luminance")
	contrast, _ := cmd.Flags().GetFloat64("contrast")
	brightness, _ := cmd.Flags().GetFloat64("brightness")

	var ops []pipeline.Op
	if hue != 0 || saturation != 1 || luminance != 1 {
		ops = append(ops, func(b bitmap.Bitmap) (bitmap.Bitmap, error) {
			return tone.AdjustHSL(b, hue, saturation, luminance), nil
		})
	}
	if contrast != 1 {
		ops = append(ops, func(b bitmap.Bitmap) (bitmap.Bitmap, error) {
			return tone.AdjustContrast(b, contrast), nil
		})
	}
	if brightness != 1 {
		ops = append(ops, func(b bitmap.Bitmap) (bitmap.Bitmap, error) {
			return tone.AdjustBrightness(b, brightness), nil
		})
	}

	return runOps(inputPath, outputPath, ops)
}
