// cmd_layout.go - Layout Command
// Hauptfunktionen: LayoutHandler, parseExtents
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/axleml/axle/format"
	"github.com/axleml/axle/nd"
)

// parseExtents parst eine komma-separierte Achsen-Liste wie "2,3,4"
func parseExtents(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	extents := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid extent %q: %w", p, err)
		}
		extents = append(extents, n)
	}
	return extents, nil
}

// LayoutHandler - Berechnet und zeigt das Speicher-Layout fuer Shape und Dtype
func LayoutHandler(cmd *cobra.Command, args []string) error {
	shapeFlag, err := cmd.Flags().GetString("shape")
	if err != nil {
		return err
	}
	dtypeFlag, err := cmd.Flags().GetString("dtype")
	if err != nil {
		return err
	}

	extents, err := parseExtents(shapeFlag)
	if err != nil {
		return err
	}
	shape, err := nd.ShapeFromSlice(extents)
	if err != nil {
		return err
	}
	dtype, err := nd.ParseDtype(dtypeFlag)
	if err != nil {
		return err
	}

	strides, err := nd.StridesOf(shape, dtype)
	if err != nil {
		return err
	}
	slog.Debug("derived layout", "shape", shape, "dtype", dtype, "strides", strides)

	var data [][]string
	for i, extent := range shape.All() {
		stride, err := strides.At(i)
		if err != nil {
			return err
		}
		data = append(data, []string{
			strconv.Itoa(i),
			strconv.FormatInt(extent, 10),
			strconv.FormatInt(stride, 10),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"AXIS", "EXTENT", "STRIDE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	nbytes := shape.NumElements() * dtype.ItemSize()
	fmt.Println()
	fmt.Printf("  shape      %s\n", shape)
	fmt.Printf("  strides    %s\n", strides)
	fmt.Printf("  dtype      %s\n", dtype)
	fmt.Printf("  elements   %d\n", shape.NumElements())
	fmt.Printf("  size       %s\n", format.HumanBytes(nbytes))

	return nil
}

// newLayoutCmd - Erstellt den layout Command
func newLayoutCmd() *cobra.Command {
	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the row-major memory layout for a shape and dtype",
		RunE:  LayoutHandler,
	}
	layoutCmd.Flags().String("shape", "", "Comma separated axis extents, e.g. 2,3,4")
	layoutCmd.Flags().String("dtype", "float32", "Element type, e.g. float32")
	return layoutCmd
}
