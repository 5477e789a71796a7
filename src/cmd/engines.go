package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apimgr/searchconv/src/action"
	"github.com/apimgr/searchconv/src/engines"
	"github.com/apimgr/searchconv/src/menu"
)

var (
	enginesVisible bool
	enginesImages  bool
	enginesCopy    bool
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List supported search engines",
	Long: `List supported search engines. --visible lists the engines shown in
quick-access order, numbered by slot.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := current.out

		var defs []engines.Definition
		if enginesVisible {
			if _, err := current.service(cmd.Context()); err != nil {
				return err
			}
			prefs, err := current.prefs.Load(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range prefs.Ordered() {
				d, _ := engines.Lookup(id)
				defs = append(defs, d)
			}
		} else {
			defs = engines.All()
			if enginesCopy {
				defs = engines.Copyable()
			}
			if enginesImages {
				kept := defs[:0]
				for _, d := range defs {
					if d.SupportsImages() {
						kept = append(kept, d)
					}
				}
				defs = kept
			}
		}

		switch p.format {
		case "json":
			return p.JSON(defs)
		case "plain":
			for _, d := range defs {
				p.Println(d.ID)
			}
			return nil
		}

		rows := make([][]string, 0, len(defs))
		for i, d := range defs {
			name := p.engineStyle(d.Color).Render(d.Name)
			slot := ""
			if enginesVisible && i < 9 {
				slot = strconv.Itoa(i + 1)
			}
			rows = append(rows, []string{slot, d.ID, name, yesNo(d.SupportsImages()), yesNo(d.ShowInContextMenu), string(d.UsesDomain)})
		}
		p.Table([]string{"#", "ID", "NAME", "IMAGES", "MENU", "DOMAIN"}, rows)
		p.Printf("\n%s\n", p.muted.Render(fmt.Sprintf("%d engines", len(defs))))
		return nil
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu [item] [text...]",
	Short: "List context menu items, or search selected text with one",
	Example: `  searchconv menu
  searchconv menu search_wikipedia Ada Lovelace`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := current.out

		if len(args) == 0 {
			items := menu.Items()
			if p.format == "json" {
				return p.JSON(items)
			}
			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{it.ID, it.ParentID, it.Title})
			}
			p.Table([]string{"ID", "PARENT", "TITLE"}, rows)
			return nil
		}

		svc, err := current.service(cmd.Context())
		if err != nil {
			return err
		}
		res, err := svc.MenuSearch(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		return current.emit(svc, res, action.DestPrint)
	},
}

func init() {
	enginesCmd.Flags().BoolVar(&enginesVisible, "visible", false, "only engines shown by current preferences, in order")
	enginesCmd.Flags().BoolVar(&enginesImages, "images", false, "only engines with image search")
	enginesCmd.Flags().BoolVar(&enginesCopy, "copyable", false, "only engines with a copy button")
}
