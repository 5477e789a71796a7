package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apimgr/searchconv/src/model"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recorded conversions and searches",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		if _, err := current.service(cmd.Context()); err != nil {
			return err
		}
		if current.history == nil {
			return fmt.Errorf("%w: history is disabled in the configuration", model.ErrStoreDisabled)
		}
		return nil
	},
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := historyLimit
		if limit <= 0 {
			limit = current.cfg.History.Limit
		}
		entries, err := current.history.List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		p := current.out
		switch p.format {
		case "json":
			return p.JSON(entries)
		case "plain":
			for _, e := range entries {
				p.Println(e.ResultURL)
			}
			return nil
		}

		if len(entries) == 0 {
			p.Println(p.muted.Render("no history"))
			return nil
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			from := e.SourceEngine
			if from == "" {
				from = "-"
			}
			rows = append(rows, []string{
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				string(e.Trigger),
				from,
				e.TargetEngine,
				e.Query,
				p.url.Render(e.ResultURL),
			})
		}
		p.Table([]string{"TIME", "TRIGGER", "FROM", "TO", "QUERY", "URL"}, rows)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := current.history.Clear(cmd.Context())
		if err != nil {
			return err
		}
		if current.out.format == "json" {
			return current.out.JSON(map[string]int64{"deleted": n})
		}
		current.out.Println(current.out.ok.Render(fmt.Sprintf("deleted %d entries", n)))
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of entries (default from config)")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
}

