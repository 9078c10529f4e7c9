package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FunkyPizza/ImageIOLibrary/internal/codec"
	"github.com/FunkyPizza/ImageIOLibrary/internal/format"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect an image's format and dimensions",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	c := codec.New()
	f := c.DetectFormat(data)

	fmt.Printf("File:      %s\n", path)
	fmt.Printf("File size: %d bytes (%.1f KB)\n", len(data), float64(len(data))/1024)
	if f == format.Invalid {
		fmt.Printf("Format:    unrecognized (known: %s)\n", strings.Join(format.Registered(), ", "))
		return nil
	}
	fmt.Printf("Format:    %s\n", f)

	b, err := c.Decode(data, f)
	if err != nil {
		fmt.Printf("Pixels:    not decodable (%v)\n", err)
		return nil
	}
	fmt.Printf("Size:      %d x %d (%d pixels)\n", b.Width, b.Height, len(b.Pix))
	return nil
}
