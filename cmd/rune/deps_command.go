package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rune/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check the external binaries video conversion needs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(cmd.Context(), deps.Requirements(cfg.FFmpeg.Binary, cfg.FFmpeg.FFprobeBinary))

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(statuses))
			for _, st := range statuses {
				path := st.Path
				if path == "" {
					path = "-"
				}
				rows = append(rows, []string{st.Name, st.Command, yesNo(st.Available), yesNo(!st.Optional), path})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Command", "Available", "Required", "Path"},
				rows,
				nil,
			))
			fprintLines(out, dependencyLines(statuses, shouldColorize(out)))

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				names := make([]string, len(missing))
				for i, st := range missing {
					names[i] = st.Name
				}
				return fmt.Errorf("required dependencies missing: %s", strings.Join(names, ", "))
			}
			return nil
		},
	}
}
