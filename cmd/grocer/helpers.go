// Shared helpers for grocer CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pantry-tools/grocer/internal/list"
	"github.com/pantry-tools/grocer/internal/sheets"
	"github.com/pantry-tools/grocer/internal/sqlite"
	"github.com/pantry-tools/grocer/pkg/types"
)

// errBadPosition marks a position argument that is not a valid row number.
var errBadPosition = errors.New("invalid position")

// buildConfig assembles the store Config from flags, config.yaml, and
// environment, following the resolution precedence.
func buildConfig() (types.Config, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return types.Config{
		Backend:         configBackend,
		SheetURL:        resolveSheetURL(),
		DataDir:         dataDir,
		CacheTTLSeconds: configCacheTTL,
	}, nil
}

// attachStore creates the configured store backend and attaches it. The
// caller must defer store.Detach().
func attachStore() (types.Store, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	var store types.Store
	switch cfg.Backend {
	case types.BackendSheets:
		store = sheets.NewAdapter(logger)
	case types.BackendSQLite:
		store = sqlite.NewBackend(logger)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}

	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// runWithController attaches the store, initializes a controller over it,
// runs fn, and detaches.
func runWithController(fn func(c *list.Controller) error) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	c := list.New(store, logger)
	if err := c.Initialize(); err != nil {
		return err
	}
	return fn(c)
}

// parsePosition converts a 1-based position argument (as printed by
// `grocer list`) into a 0-based table index.
func parsePosition(arg string, tableLen int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errBadPosition, arg)
	}
	if n < 1 || n > tableLen {
		return 0, fmt.Errorf("%w: %d is outside 1..%d", errBadPosition, n, tableLen)
	}
	return n - 1, nil
}

// styledUrgency returns the emoji-labelled urgency for human output.
// Unknown values pass through unchanged.
func styledUrgency(u string) string {
	switch u {
	case types.UrgencyNow:
		return "🔴 Now"
	case types.UrgencySoon:
		return "🟡 Soon"
	case types.UrgencyYesterday:
		return "🟣 Yesterday!"
	default:
		return u
	}
}

// viewRow pairs a row with its 1-based canonical position for JSON output.
type viewRow struct {
	Position   int    `json:"position"`
	DateAdded  string `json:"date_added"`
	ItemNeeded string `json:"item_needed"`
	Quantity   string `json:"quantity,omitempty"`
	WhereToGet string `json:"where_to_get,omitempty"`
	Urgency    string `json:"urgency"`
	Completed  bool   `json:"completed"`
}

// printView renders a filtered view: a JSON array in --json mode, otherwise
// a tabwriter table with 1-based positions matching edit/check arguments.
func printView(view types.FilteredView) error {
	if flagJSON {
		out := make([]viewRow, view.Len())
		for i, row := range view.Rows {
			out[i] = viewRow{
				Position:   view.Positions[i] + 1,
				DateAdded:  row.DateAdded,
				ItemNeeded: row.ItemNeeded,
				Quantity:   row.Quantity,
				WhereToGet: row.WhereToGet,
				Urgency:    row.Urgency,
				Completed:  row.Completed,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal view: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if view.Len() == 0 {
		fmt.Println("Your list is empty or filter settings hide all items.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "#\tITEM\tQTY\tWHERE\tURGENCY\tADDED\tDONE")
	for i, row := range view.Rows {
		done := ""
		if row.Completed {
			done = "✓"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			view.Positions[i]+1,
			row.ItemNeeded,
			row.Quantity,
			row.WhereToGet,
			styledUrgency(row.Urgency),
			row.DateAdded,
			done,
		)
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d item(s)\n", view.Len())
	return nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// warn prints a non-fatal notice to stderr.
func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
