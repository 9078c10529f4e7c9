package main

import (
	"fmt"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
	"github.com/FunkyPizza/ImageIOLibrary/internal/blend"
	"github.com/FunkyPizza/ImageIOLibrary/internal/codec"
	"github.com/FunkyPizza/ImageIOLibrary/internal/pipeline"
)

var blendCmd = &cobra.Command{
	Use:   "blend",
	Short: "Blend an image against another image or a constant tint",
	RunE:  runBlend,
}

func init() {
	blendCmd.Flags().StringP("input", "i", "", "Input image file")
	blendCmd.Flags().StringP("output", "o", "", "Output image file")
	blendCmd.Flags().String("op", "add", "Blend operation (add, multiply, divide)")
	blendCmd.Flags().String("with", "", "Second image file")
	blendCmd.Flags().String("tint", "", "Constant tint as hex color, e.g. #ff8800")
	blendCmd.MarkFlagRequired("input")
	blendCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(blendCmd)
}

func runBlend(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	opName, _ := cmd.Flags().GetString("op")
	withPath, _ := cmd.Flags().GetString("with")
	tintHex, _ := cmd.Flags().GetString("tint")

	if (withPath == "") == (tintHex == "") {
		return fmt.Errorf("exactly one of --with and --tint is required")
	}

	var op pipeline.Op
	switch {
	case withPath != "":
		other, err := readBitmap(withPath)
		if err != nil {
			return err
		}
		pairwise, err := pairwiseBlend(opName)
		if err != nil {
			return err
		}
		op = func(b bitmap.Bitmap) (bitmap.Bitmap, error) {
			return pairwise(b, other), nil
		}
	default:
		tint, err := parseTint(tintHex)
		if err != nil {
			return err
		}
		tintOp, err := tintBlend(opName)
		if err != nil {
			return err
		}
		op = func(b bitmap.Bitmap) (bitmap.Bitmap, error) {
			return tintOp(b, tint), nil
		}
	}

	return runOps(inputPath, outputPath, []pipeline.Op{op})
}

func pairwiseBlend(name string) (func(a, b bitmap.Bitmap) bitmap.Bitmap, error) {
	switch name {
	case "add":
		return blend.Add, nil
	case "multiply":
		return blend.Multiply, nil
	case "divide":
		return blend.Divide, nil
	default:
		return nil, fmt.Errorf("unknown blend operation: %q", name)
	}
}

func tintBlend(name string) (func(a bitmap.Bitmap, tint bitmap.Pixel) bitmap.Bitmap, error) {
	switch name {
	case "add":
		return blend.AddTint, nil
	case "multiply":
		return blend.MultiplyTint, nil
	case "divide":
		return blend.DivideTint, nil
	default:
		return nil, fmt.Errorf("unknown blend operation: %q", name)
	}
}

func parseTint(s string) (bitmap.Pixel, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return bitmap.Pixel{}, fmt.Errorf("parsing tint: %w", err)
	}
	return bitmap.Pixel{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 255,
	}, nil
}

func readBitmap(path string) (bitmap.Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return bitmap.Bitmap{}, fmt.Errorf("reading %s: %w", path, err)
	}
	c := codec.New()
	b, err := c.Decode(data, c.DetectFormat(data))
	if err != nil {
		return bitmap.Bitmap{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return b, nil
}
