package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/thindst/thin"
	"github.com/joshuapare/thindst/thin/layout"
)

var (
	layoutHeadSize  uint64
	layoutHeadAlign uint64
	layoutElemSize  uint64
	layoutElemAlign uint64
	layoutCount     int
)

func init() {
	rootCmd.AddCommand(newLayoutCmd())
}

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the block layout for a head and a tail of elements",
		Long: `The layout command computes where the header, head and tail sit in a
block for the given component sizes, and how many bytes the allocator must
provide.

Example:
  thinctl layout --head-size 2 --head-align 2 --elem-size 8 --elem-align 8 --count 6
  thinctl layout --elem-size 1 --count 0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout()
		},
	}
	cmd.Flags().Uint64Var(&layoutHeadSize, "head-size", 0, "Head size in bytes")
	cmd.Flags().Uint64Var(&layoutHeadAlign, "head-align", 1, "Head alignment (power of two)")
	cmd.Flags().Uint64Var(&layoutElemSize, "elem-size", 0, "Element size in bytes")
	cmd.Flags().Uint64Var(&layoutElemAlign, "elem-align", 1, "Element alignment (power of two)")
	cmd.Flags().IntVar(&layoutCount, "count", 0, "Number of tail elements")
	return cmd
}

type region struct {
	Offset uintptr `json:"offset"`
	Size   uintptr `json:"size"`
	Align  uintptr `json:"align"`
}

type layoutReport struct {
	Header    region  `json:"header"`
	Head      region  `json:"head"`
	Tail      region  `json:"tail"`
	Stride    uintptr `json:"stride"`
	Count     int     `json:"count"`
	Block     region  `json:"block"`
	Footprint uintptr `json:"footprint"`
}

func runLayout() error {
	head, err := layout.New(uintptr(layoutHeadSize), uintptr(layoutHeadAlign))
	if err != nil {
		return fmt.Errorf("invalid head: %w", err)
	}
	elem, err := layout.New(uintptr(layoutElemSize), uintptr(layoutElemAlign))
	if err != nil {
		return fmt.Errorf("invalid element: %w", err)
	}
	plan, err := layout.Combine(thin.HeaderLayout(), head, elem, layoutCount)
	if err != nil {
		return fmt.Errorf("failed to combine layout: %w", err)
	}

	report := newLayoutReport(plan)
	if jsonOut {
		return printJSON(report)
	}

	printInfo("\nBlock Layout:\n")
	printInfo("  Header:    offset=%d size=%d align=%d\n", report.Header.Offset, report.Header.Size, report.Header.Align)
	printInfo("  Head:      offset=%d size=%d align=%d\n", report.Head.Offset, report.Head.Size, report.Head.Align)
	printInfo("  Tail:      offset=%d size=%d (%d x %d)\n", report.Tail.Offset, report.Tail.Size, report.Count, report.Stride)
	printInfo("  Block:     size=%d align=%d\n", report.Block.Size, report.Block.Align)
	printInfo("  Footprint: %d bytes\n", report.Footprint)
	return nil
}

func newLayoutReport(p layout.Plan) layoutReport {
	return layoutReport{
		Header:    region{Offset: 0, Size: p.Header.Size, Align: p.Header.Align},
		Head:      region{Offset: p.HeadOffset, Size: p.Head.Size, Align: p.Head.Align},
		Tail:      region{Offset: p.TailOffset, Size: p.TailBytes(), Align: p.Elem.Align},
		Stride:    p.Elem.PadToAlign().Size,
		Count:     p.Len,
		Block:     region{Size: p.Block.Size, Align: p.Block.Align},
		Footprint: p.Footprint(),
	}
}
