package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/rjcampbel/DisneyMagic/internal/catalogapi"
	"github.com/rjcampbel/DisneyMagic/internal/domain"
	"github.com/rjcampbel/DisneyMagic/internal/service"
)

func addTree(topLevel *cobra.Command, opts *rootOptions) {
	filter := ""
	showItems := false
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the resolved catalog without opening the browser.",
		Example: `
disneymagic tree
disneymagic tree --items --filter marvel
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}

			client := catalogapi.NewClient(cfg.Catalog, logger)
			nodes, err := service.NewCatalogService(client, nil, cfg.Tile, logger).Build(cmd.Context(), nil)
			if err != nil {
				return err
			}

			printTree(cmd.OutOrStdout(), service.FilterNodes(nodes, filter), showItems)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only show rows whose title or item titles fuzzy match.")
	cmd.Flags().BoolVarP(&showItems, "items", "i", false, "List the items of each row.")

	topLevel.AddCommand(cmd)
}

var (
	headerColor = color.New(color.Bold, color.Underline)
	emptyColor  = color.New(color.FgRed)
	kindColor   = color.New(color.FgCyan)
	dimColor    = color.New(color.Faint)
)

func stateLabel(state domain.NodeState) string {
	if state == domain.StateResolvedEmpty {
		return emptyColor.Sprint(state.String())
	}
	return state.String()
}

func printTree(w io.Writer, rows []service.NodeMatch, showItems bool) {
	if len(rows) == 0 {
		fmt.Fprintln(w, dimColor.Sprint("no matching rows"))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(headerColor.Sprint("#"), headerColor.Sprint("ROW"), headerColor.Sprint("STATE"), headerColor.Sprint("ITEMS"), headerColor.Sprint("REF"))

	for _, m := range rows {
		ref := dimColor.Sprint("-")
		if m.Node.RefID() != "" {
			ref = m.Node.RefID()
		}
		tbl.AddRow(strconv.Itoa(m.Index+1), m.Node.Title(), stateLabel(m.Node.State()), strconv.Itoa(m.Node.Len()), ref)
		if !showItems {
			continue
		}
		for _, i := range m.Items {
			item := m.Node.Item(i)
			image := dimColor.Sprint("text")
			if item.ImageURL() != "" {
				image = "image"
			}
			tbl.AddRow("", "  "+item.Title(), kindColor.Sprint(item.Kind().String()), image, "")
		}
	}
	fmt.Fprintln(w, tbl)
}
