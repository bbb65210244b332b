package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/fightpicks/fightpicks/internal/catalog"
	"github.com/fightpicks/fightpicks/internal/database/postgres"
	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/resolution"
)

const (
	flagFile   = "file"
	flagDryRun = "dry-run"
)

// importSummary mirrors the counters the scraper prints after saving
type importSummary struct {
	EventsSaved   int      `json:"events_saved"`
	EventsCreated int      `json:"events_created"`
	FightsSaved   int      `json:"fights_saved"`
	FightersSaved int      `json:"fighters_saved"`
	Failed        []string `json:"failed,omitempty"`
}

func newImportCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "upsert scraped events, fights and fighters from a JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagFile, Usage: "JSON array of scraped events, - for stdin", Required: true},
			&cli.BoolFlag{Name: flagDryRun, Usage: "validate the file without writing"},
		},
		Action: func(c *cli.Context) error {
			events, err := readScrapedEvents(c.String(flagFile))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			if c.Bool(flagDryRun) {
				return printJSON(validateScrapedEvents(events))
			}
			return withPool(c, func(ctx context.Context, pool *pgxpool.Pool) error {
				svc := catalog.NewService(
					postgres.NewCatalogRepository(pool),
					resolution.NewService(postgres.NewResultRepository(pool)),
				)
				summary := importEvents(ctx, svc, events)
				if err := printJSON(summary); err != nil {
					return err
				}
				if len(summary.Failed) > 0 {
					return cli.Exit(fmt.Sprintf("%d event(s) failed to import", len(summary.Failed)), 1)
				}
				return nil
			})
		},
	}
}

func readScrapedEvents(path string) ([]domain.ScrapedEvent, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return decodeScrapedEvents(r)
}

func decodeScrapedEvents(r io.Reader) ([]domain.ScrapedEvent, error) {
	var events []domain.ScrapedEvent
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode scraped events: %w", err)
	}
	return events, nil
}

// validateScrapedEvents reports the problems of every event by URL
func validateScrapedEvents(events []domain.ScrapedEvent) map[string][]string {
	out := make(map[string][]string)
	for i := range events {
		ev := &events[i]
		catalog.NormalizeScrapedEvent(ev)
		if problems := catalog.ValidateScrapedEvent(ev); len(problems) > 0 {
			out[eventLabel(ev, i)] = problems
		}
	}
	return out
}

// importEvents saves each event on its own. A failing event is logged and
// skipped so one bad page does not block the rest of the file.
func importEvents(ctx context.Context, svc catalog.Service, events []domain.ScrapedEvent) importSummary {
	log := logger.FromContext(ctx)
	var summary importSummary
	for i := range events {
		ev := &events[i]
		res, err := svc.ImportEvent(ctx, ev)
		if err != nil {
			log.Error("Failed to import event", "event", eventLabel(ev, i), "error", err)
			summary.Failed = append(summary.Failed, eventLabel(ev, i))
			continue
		}
		summary.EventsSaved++
		if res.EventCreated {
			summary.EventsCreated++
		}
		summary.FightsSaved += res.FightsSaved
		summary.FightersSaved += res.FightersSaved
	}
	return summary
}

func eventLabel(ev *domain.ScrapedEvent, i int) string {
	if ev.URL != "" {
		return ev.URL
	}
	return fmt.Sprintf("#%d %s", i+1, ev.Name)
}
