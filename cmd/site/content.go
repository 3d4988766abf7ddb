package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SafalBhandari12/event/internal/content"
)

func newContentCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect and validate event content",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "validate [dir]",
			Short: "Validate event YAML documents (embedded content when no dir is given)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				dir := c.cfg.ContentDir
				if len(args) == 1 {
					dir = args[0]
				}
				catalog, err := loadCatalog(dir)
				if err != nil {
					var verrs content.ValidationErrors
					if errors.As(err, &verrs) {
						for _, problem := range verrs {
							fmt.Fprintln(cmd.ErrOrStderr(), "-", problem)
						}
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d events\n", len(catalog.Slugs()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the events in the content catalog",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				catalog, err := loadCatalog(c.cfg.ContentDir)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "SLUG\tNAME\tDATES\tTIERS")
				for _, ev := range catalog.Events() {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", ev.Slug, ev.Name, ev.Dates, len(ev.Tickets))
				}
				return tw.Flush()
			},
		},
	)
	return cmd
}
