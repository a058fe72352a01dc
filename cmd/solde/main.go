// Command solde loads a ledger snapshot and prints the projections the
// dashboard renders: balances, deferred-debit windows, loan progress, net
// worth, and the monthly forecast. All I/O lives here; the engine itself
// only ever sees in-memory snapshots and an explicit reference date.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/soldeapp/solde/internal/common"
	"github.com/soldeapp/solde/internal/models"
	"github.com/soldeapp/solde/internal/services/projection"
)

func main() {
	configPath := flag.String("config", os.Getenv("SOLDE_CONFIG"), "path to TOML config file")
	snapshotPath := flag.String("snapshot", "", "path to ledger snapshot JSON (overrides config)")
	asOfFlag := flag.String("as-of", "", "reference date (2006-01-02, default today)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(common.GetFullVersion())
		return
	}

	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(cfg.Logging.Level)

	path := cfg.Snapshot.Path
	if *snapshotPath != "" {
		path = *snapshotPath
	}

	snap, err := loadSnapshot(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to load ledger snapshot")
		os.Exit(1)
	}

	now := cfg.Forecast.GetReferenceDate(time.Now())
	if *asOfFlag != "" {
		d, err := time.Parse("2006-01-02", *asOfFlag)
		if err != nil {
			logger.Error().Err(err).Str("as_of", *asOfFlag).Msg("Invalid reference date")
			os.Exit(1)
		}
		now = d
	}

	svc := projection.NewService(cfg, logger)
	if err := printReport(svc, snap, now); err != nil {
		logger.Error().Err(err).Msg("Projection failed")
		os.Exit(1)
	}
}

// loadSnapshot reads and validates a ledger snapshot. Malformed entities
// and unparsable dates are ingestion errors: they fail here, loudly,
// before any projection runs.
func loadSnapshot(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &snap, nil
}

func printReport(svc *projection.Service, snap *models.Snapshot, now time.Time) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Balances as of %s\n", now.Format("2006-01-02"))
	for _, acc := range snap.Accounts {
		balance, err := svc.AccountBalance(snap, acc.ID, now)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\n", acc.Name, acc.Type, balance)

		if acc.IsDeferredDebit() {
			spending, err := svc.DeferredDebitSpending(snap, acc.ID, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "    pending\t%.2f\tdebits %s\n",
				spending.Total, spending.NextDebitDate.Format("2006-01-02"))
		}
	}

	if len(snap.Loans) > 0 {
		fmt.Fprintln(w, "\nLoans")
		for _, loan := range snap.Loans {
			remaining, progress, err := svc.LoanStatus(snap, loan.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s\tremaining %.2f\t%.0f%%\n", loan.Name, remaining, progress)
		}
	}

	nw, err := svc.NetWorth(snap, now)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nNet worth\t%.2f\t(accounts %.2f, assets %.2f, loans -%.2f)\n",
		nw.Total, nw.AccountsTotal, nw.AssetsTotal, nw.LoansOutstanding)

	points, err := svc.Forecast(snap, now)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nForecast")
	for _, p := range points {
		fmt.Fprintf(w, "  %s\t%.2f\n", p.Month.Format("Jan 2006"), p.TotalBalance)
	}

	return w.Flush()
}
