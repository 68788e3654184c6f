package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/classfmt/go-sdk/pkg/classsupport"
)

type formatOptions struct {
	mapper    string
	separator string
	null      string
}

func newFormatCmd(root *rootOptions) *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format [type...]",
		Short: "Print the given types as a separated list",
		Long: `Resolve each type name (e.g. string, time.Duration, *url.URL, []int, null)
and print the list using qualified names or the selected mapper.
Arguments may also contain comma-separated names.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mapper") {
				e.cfg.Mapper = opts.mapper
			}
			if cmd.Flags().Changed("separator") {
				e.cfg.Separator = opts.separator
			}
			if cmd.Flags().Changed("null") {
				e.cfg.Null = opts.null
			}
			if err := e.cfg.Validate(); err != nil {
				return err
			}

			out, err := runFormat(e, splitNames(args))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.mapper, "mapper", "m", "",
		"mapper to apply ("+strings.Join(classsupport.MapperNames(), "|")+")")
	cmd.Flags().StringVar(&opts.separator, "separator", classsupport.DefaultSeparator, "text placed between types")
	cmd.Flags().StringVar(&opts.null, "null", classsupport.NullLiteral, "text for absent types when no mapper is set")

	return cmd
}

func runFormat(e *env, names []string) (string, error) {
	classes, err := e.registry.Resolve(names...)
	if err != nil {
		return "", err
	}

	f := classsupport.NewFormatter(
		classsupport.WithSeparator(e.cfg.Separator),
		classsupport.WithNullLiteral(e.cfg.Null),
	)

	log := e.log.WithFields(logrus.Fields{
		"mapper": e.cfg.Mapper,
		"count":  len(classes),
	})

	if e.cfg.Mapper == "" {
		log.Debug("formatting qualified names")
		return f.Format(classes...), nil
	}

	mapper, err := classsupport.MapperByName(e.cfg.Mapper)
	if err != nil {
		return "", err
	}
	log.Debug("formatting mapped names")
	return f.FormatWith(mapper, classes...)
}

// splitNames flattens arguments such as "string, int" into single names.
func splitNames(args []string) []string {
	var names []string
	for _, arg := range args {
		for _, name := range strings.Split(arg, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
