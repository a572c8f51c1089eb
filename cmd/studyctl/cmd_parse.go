package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"study-tracker/pkg/datemath"
)

var (
	parseNow string
	parseTZ  string
)

// parseCmd groups the natural-language parsers.
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Resolve natural-language dates, ranges and times",
	Long: `Resolve free text the way the scheduling assistant does.

Available subcommands:
  date  - "14th dec", "15/01", "next friday"
  range - "15-19 january", "jan 15 to 19"
  time  - "2:30pm", "14:00", "noon"`,
}

var parseDateCmd = &cobra.Command{
	Use:   "date <text>",
	Short: "Resolve a date",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, now, err := parserAndNow()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.ParseDate(strings.Join(args, " "), now))
		return nil
	},
}

var parseRangeCmd = &cobra.Command{
	Use:   "range <text>",
	Short: "Resolve an inclusive date range",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, now, err := parserAndNow()
		if err != nil {
			return err
		}
		r, err := p.ParseDateRange(strings.Join(args, " "), now)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d days)\n", r, r.Len())
		return nil
	},
}

var parseTimeCmd = &cobra.Command{
	Use:   "time <text>",
	Short: "Resolve a 24-hour clock time",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := parserAndNow()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.ParseTime(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	parseCmd.PersistentFlags().StringVar(&parseNow, "now", "", "reference instant, RFC3339 (default now)")
	parseCmd.PersistentFlags().StringVar(&parseTZ, "tz", "UTC", "IANA time zone")
	parseCmd.AddCommand(parseDateCmd, parseRangeCmd, parseTimeCmd)
}

func parserAndNow() (*datemath.Parser, time.Time, error) {
	p, err := datemath.NewParser(parseTZ)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("--tz: %w", err)
	}

	now := time.Now()
	if parseNow != "" {
		if now, err = time.Parse(time.RFC3339, parseNow); err != nil {
			return nil, time.Time{}, fmt.Errorf("--now: %w", err)
		}
	}
	return p, now, nil
}
