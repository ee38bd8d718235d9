package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/signaura/signaura/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show activity statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")
		since, _ := cmd.Flags().GetDuration("since")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.ActivityRepo()
		counts, err := repo.CountByKind(cmd.Context())
		if err != nil {
			return fmt.Errorf("count events: %w", err)
		}
		events, err := repo.Recent(cmd.Context(), recentOpts(limit, kind, since, time.Now()))
		if err != nil {
			return fmt.Errorf("recent events: %w", err)
		}
		renderStats(cmd.OutOrStdout(), counts, events)
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent events to show")
	statsCmd.Flags().String("kind", "", "Only show recent events of this kind")
	statsCmd.Flags().Duration("since", 0, "Only show recent events from this long ago, e.g. 24h")
}

func recentOpts(limit int, kind string, since time.Duration, now time.Time) store.QueryOpts {
	opts := store.QueryOpts{Limit: limit, Kind: store.Kind(kind)}
	if since > 0 {
		opts.From = now.Add(-since)
	}
	return opts
}

// openStore opens the activity log regardless of SIGNAURA_RECORD.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

var statsTitle = lipgloss.NewStyle().Bold(true)

func renderStats(w io.Writer, counts []store.KindCount, events []store.ActivityEvent) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "No activity recorded yet.")
		return
	}

	total := 0
	byKind := table.New().Headers("KIND", "EVENTS")
	for _, c := range counts {
		total += c.Count
		byKind.Row(string(c.Kind), strconv.Itoa(c.Count))
	}
	fmt.Fprintln(w, statsTitle.Render(fmt.Sprintf("Activity (%d events)", total)))
	fmt.Fprintln(w, byKind.String())

	if len(events) == 0 {
		return
	}
	recent := table.New().Headers("#", "WHEN", "USER", "KIND", "DETAIL")
	for _, e := range events {
		user := e.Username
		if user == "" {
			user = "-"
		}
		recent.Row(
			strconv.FormatInt(e.Sequence, 10),
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			user,
			string(e.Kind),
			e.Detail,
		)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, statsTitle.Render("Recent"))
	fmt.Fprintln(w, recent.String())
}
