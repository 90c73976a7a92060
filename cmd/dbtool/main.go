package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"googleapi-client/internal/adapters/usage"
	"googleapi-client/internal/config"
	"googleapi-client/internal/platform/db"
	"googleapi-client/internal/platform/logger"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"
)

const usageText = `usage: dbtool <command> [flags]

commands:
  migrate                  apply the usage journal schema
  summary [-since 24h]     print calls per endpoint
  prune [-older-than 720h] delete old journal rows
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env, cfg.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = config.Get("DATABASE_URL", "")
	}
	if databaseURL == "" {
		log.Error("GOOGLEAPI_DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := run(ctx, os.Stdout, os.Args[1], os.Args[2:], conn, log); err != nil {
		log.Error("dbtool failed", "command", os.Args[1], "error", err)
		conn.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, cmd string, args []string, conn *sql.DB, log *logger.Logger) error {
	journal := usage.NewSQLUsageJournal(conn, log)

	switch cmd {
	case "migrate":
		log.Info("initializing usage journal schema")
		if err := usage.InitSchema(ctx, conn); err != nil {
			return err
		}
		log.Info("schema ready")
		return nil

	case "summary":
		fs := flag.NewFlagSet("summary", flag.ContinueOnError)
		fs.SetOutput(out)
		since := fs.Duration("since", 24*time.Hour, "window to summarize")
		if err := fs.Parse(args); err != nil {
			return err
		}

		rows, err := journal.Summary(ctx, time.Now().Add(-*since))
		if err != nil {
			return err
		}
		return printSummary(out, rows)

	case "prune":
		fs := flag.NewFlagSet("prune", flag.ContinueOnError)
		fs.SetOutput(out)
		olderThan := fs.Duration("older-than", 30*24*time.Hour, "age of rows to delete")
		if err := fs.Parse(args); err != nil {
			return err
		}

		n, err := journal.Prune(ctx, time.Now().Add(-*olderThan))
		if err != nil {
			return err
		}
		log.Info("pruned usage journal", "rows", n)
		return nil

	default:
		fmt.Fprint(out, usageText)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printSummary(out io.Writer, rows []usage.EndpointUsage) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENDPOINT\tCALLS\tFAILURES\tAVG MS\tLAST CALL")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%s\n",
			r.Endpoint, r.Calls, r.Failures, r.AvgDurationMs, r.LastCalledAt.Format(time.RFC3339))
	}
	return w.Flush()
}
