package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apimgr/searchconv/src/engines"
	"github.com/apimgr/searchconv/src/preferences"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show and change engine preferences",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		_, err := current.service(cmd.Context())
		return err
	},
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := current.prefs.Load(cmd.Context())
		if err != nil {
			return err
		}
		return printPrefs(p)
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set amazon-domain, youtube-domain or default-engine",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		updates, err := prefsUpdate(args[0], args[1])
		if err != nil {
			return err
		}
		p, err := current.prefs.Update(cmd.Context(), updates)
		if err != nil {
			return err
		}
		return printPrefs(p)
	},
}

var prefsOrderCmd = &cobra.Command{
	Use:   "order <engine>...",
	Short: "Set the quick-access order; unlisted visible engines follow",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range args {
			if !engines.Exists(preferences.NormalizeEngineID(id)) {
				return fmt.Errorf("unknown engine %q", id)
			}
		}
		p, err := current.prefs.Update(cmd.Context(), &preferences.Preferences{ButtonOrder: args})
		if err != nil {
			return err
		}
		return printPrefs(p)
	},
}

var prefsShowEngineCmd = &cobra.Command{
	Use:   "enable <engine>...",
	Short: "Show engines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setVisible(cmd, args, true)
	},
}

var prefsHideEngineCmd = &cobra.Command{
	Use:   "disable <engine>...",
	Short: "Hide engines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setVisible(cmd, args, false)
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.prefs.Reset(cmd.Context()); err != nil {
			return err
		}
		current.out.Println(current.out.ok.Render("preferences reset"))
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsOrderCmd)
	prefsCmd.AddCommand(prefsShowEngineCmd)
	prefsCmd.AddCommand(prefsHideEngineCmd)
	prefsCmd.AddCommand(prefsResetCmd)
}

// prefsUpdate validates one key/value pair. Values Sanitize would silently
// replace are rejected here instead.
func prefsUpdate(key, value string) (*preferences.Preferences, error) {
	switch strings.ToLower(key) {
	case "amazon-domain", "amazondomain":
		if !engines.IsValidDomain(engines.DomainAmazon, value) {
			return nil, fmt.Errorf("amazon domain %q not allowed (allowed: %s)",
				value, strings.Join(engines.AllowedDomains(engines.DomainAmazon), ", "))
		}
		return &preferences.Preferences{AmazonDomain: value}, nil
	case "youtube-domain", "youtubedomain":
		if !engines.IsValidDomain(engines.DomainYouTube, value) {
			return nil, fmt.Errorf("youtube domain %q not allowed (allowed: %s)",
				value, strings.Join(engines.AllowedDomains(engines.DomainYouTube), ", "))
		}
		return &preferences.Preferences{YoutubeDomain: value}, nil
	case "default-engine", "defaultsearchengine":
		id := preferences.NormalizeEngineID(value)
		if !engines.Exists(id) {
			return nil, fmt.Errorf("unknown engine %q", value)
		}
		return &preferences.Preferences{DefaultSearchEngine: id}, nil
	}
	return nil, fmt.Errorf("unknown preference %q (want amazon-domain, youtube-domain or default-engine)", key)
}

func setVisible(cmd *cobra.Command, ids []string, visible bool) error {
	updates := &preferences.Preferences{VisibleEngines: make(map[string]bool, len(ids))}
	for _, raw := range ids {
		id := preferences.NormalizeEngineID(raw)
		if !engines.Exists(id) {
			return fmt.Errorf("unknown engine %q", raw)
		}
		updates.VisibleEngines[id] = visible
	}
	p, err := current.prefs.Update(cmd.Context(), updates)
	if err != nil {
		return err
	}
	return printPrefs(p)
}

func printPrefs(p *preferences.Preferences) error {
	out := current.out
	if out.format == "json" {
		return out.JSON(p)
	}

	ordered := p.Ordered()
	slots := make([]string, 0, len(ordered))
	for i, id := range ordered {
		if i < preferences.MaxShortcut {
			id = fmt.Sprintf("%d:%s", i+1, id)
		}
		slots = append(slots, id)
	}
	out.KeyValues([][2]string{
		{"Amazon domain", p.AmazonDomain},
		{"YouTube domain", p.YoutubeDomain},
		{"Default engine", p.DefaultEngine()},
		{"Visible", strings.Join(slots, " ")},
	})
	return nil
}
