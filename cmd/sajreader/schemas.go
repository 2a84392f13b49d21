// cmd/sajreader/schemas.go
package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tamzrod/saj-reader/internal/schema"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the built-in register layouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSchemas(cmd.OutOrStdout())
	},
}

func listSchemas(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tADDRESS\tCOUNT\tFIELDS\tENTRY")

	for _, name := range schema.Names() {
		s, err := schema.Builtin(name)
		if err != nil {
			return err
		}
		entry := "-"
		if s.Entry != nil {
			entry = fmt.Sprintf("%d words", s.Entry.Size)
		}
		fmt.Fprintf(tw, "%s\t%d\t0x%04X\t%d\t%d\t%s\n",
			s.Name, s.Version, s.Address, s.Count, len(s.Fields), entry)
	}
	return tw.Flush()
}
