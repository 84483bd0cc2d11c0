package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gl-reconciler/internal/config"
	"gl-reconciler/internal/gateway"
	"gl-reconciler/internal/logging"
	"gl-reconciler/internal/usecase"
)

var (
	excelPath string
	sqlPath   string
	sqlQuery  string
	outPath   string
	format    string
	noAI      bool
)

var rootCmd = &cobra.Command{
	Use:   "glrecon",
	Short: "General-ledger reconciliation tool",
	Long: `glrecon compares an Excel GL extract against a SQL GL extract and
reports discrepancies: row count drift, aggregate mismatches, duplicate
records and per-transaction anomalies.

Statistical analysis always runs locally. When a Gemini API key is
configured, an AI-powered pass additionally localizes individual
mismatched transactions.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&excelPath, "excel", "", "path to the Excel GL extract (CSV or XLSX) (required)")
	rootCmd.Flags().StringVar(&sqlPath, "sql", "", "path to the SQL GL extract (CSV or XLSX)")
	rootCmd.Flags().StringVar(&sqlQuery, "sql-query", "", "query producing the SQL GL extract (requires MYSQL_DSN)")
	rootCmd.Flags().StringVar(&outPath, "out", "", "report output path (default: stdout)")
	rootCmd.Flags().StringVar(&format, "format", "csv", "report format: csv, json or xlsx")
	rootCmd.Flags().BoolVar(&noAI, "no-ai", false, "skip AI mismatch detection")
	rootCmd.Flags().Int("sample-size", config.DefaultSampleSize, "rows per extract sent to the AI collaborator")
	rootCmd.Flags().Float64("tolerance", usecase.DefaultSumTolerance, "absolute tolerance for column total comparison")
	rootCmd.Flags().Bool("strict-dates", false, "fail on malformed dates instead of degrading to an issue")

	cobra.CheckErr(rootCmd.MarkFlagRequired("excel"))
	cobra.CheckErr(viper.BindPFlag("sample-size", rootCmd.Flags().Lookup("sample-size")))
	cobra.CheckErr(viper.BindPFlag("tolerance", rootCmd.Flags().Lookup("tolerance")))
	cobra.CheckErr(viper.BindPFlag("strict-dates", rootCmd.Flags().Lookup("strict-dates")))
}

func run(cmd *cobra.Command, _ []string) error {
	log := logging.GetLogger()
	cfg := config.Load()
	ctx := cmd.Context()

	if sqlPath == "" && sqlQuery == "" {
		return fmt.Errorf("one of --sql or --sql-query is required")
	}
	if sqlPath != "" && sqlQuery != "" {
		return fmt.Errorf("--sql and --sql-query are mutually exclusive")
	}

	// Wire the application. DI is done manually, which is clear and
	// simple at this size.
	var db *sqlx.DB
	sqlSource := sqlPath
	if sqlQuery != "" {
		if cfg.MySQLDSN == "" {
			return fmt.Errorf("--sql-query requires MYSQL_DSN to be configured")
		}
		var err error
		db, err = gateway.OpenMySQL(cfg.MySQLDSN)
		if err != nil {
			return fmt.Errorf("could not connect to ledger database: %w", err)
		}
		defer db.Close()
		sqlSource = sqlQuery
	}
	repo := gateway.NewExtractRepository(db)

	var detector usecase.MismatchDetector
	switch {
	case noAI:
		log.Info("AI analysis disabled by flag")
	case cfg.GeminiAPIKey == "":
		log.Warn("no GEMINI_API_KEY configured, AI analysis will be skipped")
	default:
		d, err := gateway.NewGeminiDetector(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.SampleSize)
		if err != nil {
			return fmt.Errorf("could not initialize AI detector: %w", err)
		}
		detector = d
	}

	uc := usecase.NewReconcileUseCase(repo, detector, usecase.AnalyzeOptions{
		SumTolerance: cfg.SumTolerance,
		StrictDates:  cfg.StrictDates,
	})

	result, err := uc.Reconcile(ctx, excelPath, sqlSource)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Excel rows: %d | SQL rows: %d | Discrepancies: %d | Elapsed: %s\n",
		result.Analysis.ExcelRowCount, result.Analysis.SQLRowCount, len(result.Report), result.Elapsed.Round(time.Millisecond))

	return writeReport(result, outPath, format)
}

func writeReport(result *usecase.Result, path, format string) error {
	switch format {
	case "xlsx":
		if path == "" {
			return fmt.Errorf("--out is required for xlsx output")
		}
		return gateway.WriteReportExcel(path, result.Report)
	case "csv", "json":
		out := os.Stdout
		if path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("could not create report file: %w", err)
			}
			defer f.Close()
			out = f
		}
		if format == "json" {
			return gateway.WriteReportJSON(out, result.Report)
		}
		return gateway.WriteReportCSV(out, result.Report)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.GetLogger().WithError(err).Error("glrecon failed")
		os.Exit(1)
	}
}
