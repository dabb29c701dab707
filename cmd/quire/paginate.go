package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	focusPage    int
	excerptWidth int
)

var paginateCmd = &cobra.Command{
	Use:   "paginate <file>",
	Short: "Split a manuscript into pages and list them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		document, err := readDocument(args)
		if err != nil {
			return err
		}

		e, cleanup, err := newEngine(cfg, logger, document)
		if err != nil {
			return err
		}
		defer cleanup()

		pages := e.Pages()
		if focusPage > 0 {
			// Show the render window the editor would hold around
			// the focused page.
			pages = e.Window(focusPage - 1)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PAGE\tWORDS\tCHARS\tRANGE\tEXCERPT")
		for _, p := range pages {
			fmt.Fprintf(w, "%s\t%d\t%d\t[%d:%d)\t%s\n",
				p.ID, p.WordCount, p.CharacterCount, p.StartIndex, p.EndIndex,
				p.Excerpt(excerptWidth))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		m := e.Metrics()
		logger.Debug("split points",
			"paragraph", m.SplitParagraph,
			"sentence", m.SplitSentence,
			"word", m.SplitWord,
			"forced", m.SplitForced)
		return nil
	},
}

func init() {
	paginateCmd.Flags().IntVar(&focusPage, "page", 0, "show only the render window around this page")
	paginateCmd.Flags().IntVar(&excerptWidth, "excerpt", 40, "excerpt width in characters")
}
