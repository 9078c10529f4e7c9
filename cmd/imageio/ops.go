package main

import (
	"fmt"
	"os"

	"github.com/FunkyPizza/ImageIOLibrary/internal/codec"
	"github.com/FunkyPizza/ImageIOLibrary/internal/pipeline"
)

// runOps reads inputPath, applies ops in order, and re-encodes to outputPath
// in the detected input format.
func runOps(inputPath, outputPath string, ops []pipeline.Op) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Run(data, codec.New(), ops, pipeline.Options{})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Wrote %s: %dx%d %s (%d bytes)\n", outputPath, result.Width, result.Height, result.Format, len(result.Data))
	return nil
}
