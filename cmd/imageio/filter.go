package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
	"github.com/FunkyPizza/ImageIOLibrary/internal/filter"
	"github.com/FunkyPizza/ImageIOLibrary/internal/pipeline"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Convolve an image with a named kernel",
	RunE:  runFilter,
}

func init() {
	filterCmd.Flags().StringP("input", "i", "", "Input image file")
	filterCmd.Flags().StringP("output", "o", "", "Output image file")
	filterCmd.Flags().String("preset", "", "Kernel preset (identity, box-blur, gaussian3, gaussian5, sharpen, edge-detection)")
	filterCmd.Flags().String("channel", "", "Channel mode override (rgb, rgba, r, g, b, a, greyscale)")
	filterCmd.Flags().Float32("factor", 0, "Kernel factor override")
	filterCmd.Flags().Float32("bias", 0, "Kernel bias override")
	filterCmd.MarkFlagRequired("input")
	filterCmd.MarkFlagRequired("output")
	filterCmd.MarkFlagRequired("preset")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	presetName, _ := cmd.Flags().GetString("preset")
	channelName, _ := cmd.Flags().GetString("channel")

	preset, err := filter.ParsePreset(presetName)
	if err != nil {
		return err
	}
	k := filter.Named(preset)

	if channelName != "" {
		mode, err := filter.ParseChannelMode(channelName)
		if err != nil {
			return err
		}
		k = k.WithMode(mode)
	}
	if cmd.Flags().Changed("factor") {
		k.Factor, _ = cmd.Flags().GetFloat32("factor")
	}
	if cmd.Flags().Changed("bias") {
		k.Bias, _ = cmd.Flags().GetFloat32("bias")
	}

	op := func(b bitmap.Bitmap) (bitmap.Bitmap, error) {
		out, err := filter.Apply(b, k)
		if err != nil {
			return bitmap.Bitmap{}, fmt.Errorf("applying %s: %w", preset, err)
		}
		return out, nil
	}
	return runOps(inputPath, outputPath, []pipeline.Op{op})
}
