package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/thindst/pkg/thinstr"
)

var decodeFrom string

func init() {
	rootCmd.AddCommand(newDecodeCmd())
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a file into a thin string",
		Long: `The decode command reads a file in the given encoding, stores the text as
a thin string, and prints it with its byte and rune counts.

Example:
  thinctl decode --from utf-16le name.bin
  thinctl decode --from windows-1252 legacy.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
	cmd.Flags().StringVar(&decodeFrom, "from", "utf-8", "Source encoding: utf-8, windows-1252, utf-16le")
	return cmd
}

type decodeReport struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Bytes  int    `json:"bytes"`
	Runes  int    `json:"runes"`
}

func runDecode(args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var s thinstr.String
	switch decodeFrom {
	case "utf-8", "utf8":
		s, err = thinstr.FromBytes(data)
	case "windows-1252", "cp1252":
		s, err = thinstr.DecodeWindows1252(data)
	case "utf-16le", "utf16le":
		s, err = thinstr.DecodeUTF16LE(data)
	default:
		return fmt.Errorf("unknown encoding %q", decodeFrom)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}
	defer s.Release()

	report := decodeReport{
		Text:   s.String(),
		Source: s.Encoding().String(),
		Bytes:  s.Len(),
		Runes:  s.Runes(),
	}
	if jsonOut {
		return printJSON(report)
	}

	printInfo("%s\n", report.Text)
	printInfo("  source=%s bytes=%d runes=%d\n", report.Source, report.Bytes, report.Runes)
	return nil
}
