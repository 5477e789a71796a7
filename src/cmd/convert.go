package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apimgr/searchconv/src/action"
	"github.com/apimgr/searchconv/src/convert"
	"github.com/apimgr/searchconv/src/engines"
	"github.com/apimgr/searchconv/src/history"
	"github.com/apimgr/searchconv/src/preferences"
)

var (
	convertTo   string
	convertDest string

	searchEngine string
	searchImages bool
	searchSlot   int
	searchDest   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <url>",
	Short: "Rebuild a search results URL for another engine",
	Example: `  searchconv convert 'https://www.google.com/search?q=golang' --to duckduckgo
  searchconv convert 'https://www.bing.com/images/search?q=cats' --to brave --dest open`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest, err := action.ParseDestination(convertDest)
		if err != nil {
			return err
		}
		svc, err := current.service(cmd.Context())
		if err != nil {
			return err
		}

		res, err := svc.Convert(cmd.Context(), args[0], convertTo, history.TriggerConvert)
		if err != nil {
			return err
		}
		return current.emit(svc, res, dest)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Build a search URL for a query",
	Long: `Build a search URL for a query. A bang such as "!yt" at the start or
end of the query picks the engine. Without --engine or a bang the preferred
default engine is used. --slot picks the engine in quick-access position N.`,
	Example: `  searchconv search golang generics
  searchconv search '!w go (programming language)'
  searchconv search --slot 2 rust`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest, err := action.ParseDestination(searchDest)
		if err != nil {
			return err
		}
		svc, err := current.service(cmd.Context())
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		var res *convert.Result
		if searchSlot > 0 {
			res, err = svc.Shortcut(cmd.Context(), searchSlot, query, searchImages)
		} else {
			res, err = svc.Search(cmd.Context(), searchEngine, query, searchImages, history.TriggerSearch)
		}
		if err != nil {
			return err
		}
		return current.emit(svc, res, dest)
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect <url>",
	Short: "Print the engine id for a search results URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := engines.Detect(args[0])
		if !ok {
			return errors.New(convert.NotSupportedStatus)
		}
		image := engines.IsImageSearch(args[0])

		if current.out.format == "json" {
			return current.out.JSON(map[string]any{"engine": id, "image": image})
		}
		current.out.Println(id)
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <url>",
	Short: "Show the engine, query and image flag of a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := convert.Inspect(args[0])
		p := current.out

		if p.format == "json" {
			return p.JSON(in)
		}

		status := p.bad.Render(in.Status)
		if in.Detected {
			status = p.ok.Render(in.Status)
		}
		query := p.muted.Render("(none)")
		if in.HasQuery {
			query = strconv.Quote(in.Query)
		}
		p.KeyValues([][2]string{
			{"Status", status},
			{"Engine", in.Engine},
			{"Site", in.Site},
			{"Query", query},
			{"Images", yesNo(in.Image)},
		})
		return nil
	},
}

// emit prints or delivers a produced URL.
func (a *app) emit(svc *convert.Service, res *convert.Result, dest action.Destination) error {
	if a.out.format == "json" {
		if dest != action.DestPrint {
			if err := svc.Deliver(res, dest); err != nil {
				return err
			}
		}
		return a.out.JSON(res)
	}

	if err := svc.Deliver(res, dest); err != nil {
		return err
	}
	switch dest {
	case action.DestOpen:
		a.out.Printf("%s %s\n", a.out.ok.Render("opened"), a.out.url.Render(res.URL))
	case action.DestCopy:
		a.out.Printf("%s %s\n", a.out.ok.Render("copied"), a.out.url.Render(res.URL))
	}
	return nil
}

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "target engine id")
	convertCmd.Flags().StringVarP(&convertDest, "dest", "d", "print", "where to send the URL: print, open, copy")
	convertCmd.MarkFlagRequired("to")

	searchCmd.Flags().StringVarP(&searchEngine, "engine", "e", "", "engine id (default: preferred engine)")
	searchCmd.Flags().BoolVarP(&searchImages, "images", "i", false, "image search where supported")
	searchCmd.Flags().IntVarP(&searchSlot, "slot", "n", 0, fmt.Sprintf("use the engine in quick-access slot 1-%d", preferences.MaxShortcut))
	searchCmd.Flags().StringVarP(&searchDest, "dest", "d", "print", "where to send the URL: print, open, copy")
	searchCmd.MarkFlagsMutuallyExclusive("engine", "slot")
}
