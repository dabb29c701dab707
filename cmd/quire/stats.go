package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show page, word, and character totals for a manuscript",
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

		st := e.Stats()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pages:      %d\n", st.TotalPages)
		fmt.Fprintf(out, "words:      %d\n", st.TotalWords)
		fmt.Fprintf(out, "characters: %d\n", st.TotalCharacters)
		return nil
	},
}
