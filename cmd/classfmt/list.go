package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/classfmt/go-sdk/pkg/classsupport"
)

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the type names classfmt understands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.load(cmd)
			if err != nil {
				return err
			}

			nameColor := color.New(color.FgCyan)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range e.registry.Names() {
				class, err := e.registry.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", nameColor.Sprint(name), classsupport.QualifiedName(class))
			}
			e.log.WithField("count", e.registry.Count()).Debug("listed types")
			return w.Flush()
		},
	}
}
