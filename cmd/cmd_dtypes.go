// cmd_dtypes.go - Dtypes und Env Commands
// Hauptfunktionen: DtypesHandler, EnvHandler
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/axleml/axle/envconfig"
	"github.com/axleml/axle/nd"
)

// DtypesHandler - Listet alle Element-Typen mit Byte-Breite auf
func DtypesHandler(cmd *cobra.Command, args []string) error {
	var data [][]string
	for _, dt := range nd.Dtypes() {
		data = append(data, []string{
			dt.String(),
			strconv.FormatInt(dt.ItemSize(), 10),
			strconv.FormatBool(dt.IsFloat()),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"DTYPE", "ITEM SIZE", "FLOAT"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

// EnvHandler - Zeigt die aktuelle Environment-Konfiguration an
func EnvHandler(cmd *cobra.Command, args []string) error {
	m := envconfig.AsMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		e := m[k]
		fmt.Printf("%-24s %v\n", e.Name, e.Value)
	}
	return nil
}

// newDtypesCmd - Erstellt den dtypes Command
func newDtypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dtypes",
		Short: "List supported element types",
		RunE:  DtypesHandler,
	}
}

// newEnvCmd - Erstellt den env Command
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the current environment configuration",
		RunE:  EnvHandler,
	}
}
