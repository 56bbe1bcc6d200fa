package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rune/internal/ramp"
	"rune/internal/textutil"
)

const rampPreviewWidth = 40

func newRampsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "ramps",
		Short:       "List built-in glyph ramps",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := ramp.Names()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				r, _ := ramp.Lookup(name)
				rows = append(rows, []string{
					name,
					strconv.Itoa(r.Len()),
					textutil.Truncate(strconv.Quote(r.String()), rampPreviewWidth),
					textutil.Ternary(name == ramp.DefaultName, "yes", ""),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Name", "Glyphs", "Darkest → lightest", "Default"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
