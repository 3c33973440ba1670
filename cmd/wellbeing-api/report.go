package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JonnyWalker81/wellbeing/backend/internal/config"
	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/internal/repository"
	"github.com/JonnyWalker81/wellbeing/backend/internal/service"
	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
	"github.com/JonnyWalker81/wellbeing/backend/pkg/supabase"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a wellbeing report for one user",
	Long:  `Load a user's mood entries and tasks and print the trend, correlation table and insight.`,
	RunE:  runReport,
}

var (
	reportUser   string
	reportWindow string
	reportTZ     string
	reportJSON   bool
)

func init() {
	reportCmd.Flags().StringVarP(&reportUser, "user", "u", "", "User id (required)")
	reportCmd.Flags().StringVarP(&reportWindow, "window", "w", "", "Window in days: 7, 30 or 90 (defaults to config)")
	reportCmd.Flags().StringVar(&reportTZ, "tz", "", "IANA time zone (defaults to config)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Print the report as JSON")
	_ = reportCmd.MarkFlagRequired("user")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// stdout carries the report
	logCfg := cfg.LoggerConfig()
	logCfg.Output = os.Stderr
	log := logger.NewSlogLogger(logCfg)
	logger.SetDefault(log)

	var q service.Query
	if reportWindow != "" {
		if q.Window, err = wellbeing.ParseWindow(reportWindow); err != nil {
			return err
		}
	}
	if reportTZ != "" {
		if q.Location, err = wellbeing.LoadLocation(reportTZ); err != nil {
			return err
		}
	}

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	insightsService, err := newInsightsService(cfg,
		repository.NewMoodRepository(supabaseClient),
		repository.NewTaskRepository(supabaseClient),
		log,
	)
	if err != nil {
		return err
	}

	ctx := logger.WithLogger(cmd.Context(), log)
	report, err := insightsService.GetReport(ctx, reportUser, q)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	out := cmd.OutOrStdout()
	if reportJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	renderReport(out, report)
	return nil
}

var (
	headingColor  = color.New(color.Bold, color.FgCyan)
	gapColor      = color.New(color.FgHiBlack)
	positiveColor = color.New(color.FgGreen)
	negativeColor = color.New(color.FgRed)
)

var titleCaser = cases.Title(language.English)

// humanize turns identifiers such as strong_positive into "Strong Positive"
func humanize(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

func tierColor(t wellbeing.CorrelationTier) *color.Color {
	switch t {
	case wellbeing.TierStrongPositive, wellbeing.TierPositive:
		return positiveColor
	case wellbeing.TierNegative:
		return negativeColor
	default:
		return color.New(color.Reset)
	}
}

func renderReport(w io.Writer, r *wellbeing.Report) {
	headingColor.Fprintf(w, "Wellbeing report: last %d days (%s)\n", r.Window.Days(), r.Timezone)
	fmt.Fprintf(w, "%s\n\n", r.Today.Label)

	headingColor.Fprintln(w, "Mood trend")
	for _, p := range r.Trend {
		if p.Score.IsGap() {
			gapColor.Fprintf(w, "  %-8s    -\n", p.Label)
			continue
		}
		fmt.Fprintf(w, "  %-8s %4.1f %s\n", p.Label, p.Score.Value, strings.Repeat("#", int(p.Score.Value*2+0.5)))
	}
	fmt.Fprintln(w)

	headingColor.Fprintf(w, "Mood and tasks (%d classified days)\n", r.ClassifiedDays)
	if len(r.Correlations) == 0 {
		fmt.Fprintln(w, "  No days with mood entries yet")
	}
	for _, row := range r.Correlations {
		fmt.Fprintf(w, "  %-8s %-8s %4.1f  %2d done  ", row.Label, row.Mood, row.AverageMood, row.CompletedTasks)
		tierColor(row.Tier).Fprintln(w, humanize(string(row.Tier)))
	}
	fmt.Fprintln(w)

	headingColor.Fprintln(w, "Insight")
	fmt.Fprintf(w, "  %s\n\n", r.Insight.Message)

	headingColor.Fprintln(w, "Tasks")
	fmt.Fprintf(w, "  %d of %d completed (%.0f%%), %d pending\n", r.Tasks.Completed, r.Tasks.Total, r.Tasks.CompletionRate, r.Tasks.Pending)
	for _, name := range r.Tasks.Categories.Names() {
		c := r.Tasks.Categories[name]
		fmt.Fprintf(w, "  %-16s %d/%d done, %d pending\n", humanize(name), c.Completed, c.Total, c.Pending())
	}
}
