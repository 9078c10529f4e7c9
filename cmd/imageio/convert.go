package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FunkyPizza/ImageIOLibrary/internal/codec"
	"github.com/FunkyPizza/ImageIOLibrary/internal/format"
	"github.com/FunkyPizza/ImageIOLibrary/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Re-encode an image in another container format",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input image file")
	convertCmd.Flags().StringP("output", "o", "", "Output image file")
	convertCmd.Flags().StringP("format", "f", "", "Output format ("+strings.Join(format.Registered(), ", ")+")")
	convertCmd.Flags().Int("quality", 90, "JPEG quality (1-100)")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	convertCmd.MarkFlagRequired("format")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")

	out := format.FromName(formatName)
	if out == format.Invalid {
		return fmt.Errorf("unknown output format %q (known: %s)", formatName, strings.Join(format.Registered(), ", "))
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	c := codec.New()
	c.Quality = quality

	result, err := pipeline.Run(data, c, nil, pipeline.Options{Output: out})
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Converted %dx%d → %s\n", result.Width, result.Height, result.Format)
	fmt.Printf("Input:  %s (%d bytes)\n", inputPath, len(data))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(result.Data))
	return nil
}
