package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"study-tracker/pkg/studyday"
)

var (
	windowAt     string
	windowPeriod string
	windowOffset string
	windowTZ     string
)

// windowCmd prints the study window containing a reference instant.
var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Print the study window containing an instant",
	Long: `Print the daily, weekly or monthly study window containing --at.

Study days start at --offset (HH:MM) local time in --tz; weeks start on Sunday.
The window end is the last included millisecond.`,
	Example: `  studyctl window --at 2025-01-15T04:59:00Z --period daily --offset 05:00`,
	Args:    cobra.NoArgs,
	RunE:    runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&windowAt, "at", "", "reference instant, RFC3339 (default now)")
	windowCmd.Flags().StringVar(&windowPeriod, "period", string(studyday.Daily), "daily, weekly or monthly")
	windowCmd.Flags().StringVar(&windowOffset, "offset", "00:00", "study-day start, HH:MM")
	windowCmd.Flags().StringVar(&windowTZ, "tz", "UTC", "IANA time zone")
}

func runWindow(cmd *cobra.Command, args []string) error {
	loc, err := time.LoadLocation(windowTZ)
	if err != nil {
		return fmt.Errorf("--tz: %w", err)
	}

	at := time.Now()
	if windowAt != "" {
		if at, err = time.Parse(time.RFC3339, windowAt); err != nil {
			return fmt.Errorf("--at: %w", err)
		}
	}

	period, err := studyday.ParsePeriod(windowPeriod)
	if err != nil {
		return fmt.Errorf("--period: %w", err)
	}
	offset, err := studyday.ParseOffset(windowOffset)
	if err != nil {
		return fmt.Errorf("--offset: %w", err)
	}

	cal, err := studyday.NewCalendar(offset, loc)
	if err != nil {
		return err
	}
	w, err := cal.Window(at, period)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "period: %s\n", period)
	fmt.Fprintf(out, "start:  %s\n", w.Start.Format(time.RFC3339Nano))
	fmt.Fprintf(out, "end:    %s\n", w.End.Format(time.RFC3339Nano))
	fmt.Fprintf(out, "day:    %s\n", cal.DayOf(at))
	return nil
}
