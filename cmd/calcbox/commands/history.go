package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"calcbox/internal/domain"
	domaintypes "calcbox/internal/domain/types"
	"calcbox/internal/store"
)

func historyCmd() *cobra.Command {
	var (
		limit    int
		clearAll bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recent tool runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.History == nil {
				return errors.New("history is disabled (history.enabled: false)")
			}
			if clearAll {
				if err := appCtx.History.ClearHistory(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
				return nil
			}

			entries, err := appCtx.History.RecentHistory(cmd.Context(), limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WHEN\tTOOL\tARGS\tRESULT")
			for _, e := range entries {
				result := e.Display
				if e.ErrorKind != "" {
					result = e.ErrorKind + ": " + e.Message
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Tool, formatArgs(e.Args), result)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", store.DefaultHistoryLimit, "number of entries to show")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete all history")
	return cmd
}

func formatArgs(args map[string]string) string {
	parts := make([]string, 0, len(args))
	for k, v := range args {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

func prefsCmd() *cobra.Command {
	var setLocale, setCategory string
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the saved locale and category",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Preferences.LoadPreferences()
			if err != nil {
				return err
			}
			changed := false
			if setLocale != "" {
				p.Locale, changed = setLocale, true
			}
			if setCategory != "" {
				c, ok := domaintypes.ParseCategory(setCategory)
				if !ok {
					return fmt.Errorf("unknown category %q", setCategory)
				}
				p.Category, changed = c, true
			}
			if changed {
				if err := appCtx.Preferences.SavePreferences(p); err != nil {
					return err
				}
			}

			category := p.Category
			if category == "" {
				category = domain.CategoryAll
			}
			fmt.Fprintf(cmd.OutOrStdout(), "locale:   %s\ncategory: %s\n", orDefault(p.Locale, "(config)"), category)
			return nil
		},
	}
	cmd.Flags().StringVar(&setLocale, "set-locale", "", "save a default display locale")
	cmd.Flags().StringVar(&setCategory, "set-category", "", "save the selected category")
	return cmd
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
