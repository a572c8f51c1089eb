package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"study-tracker/pkg/gcalendar"
)

var gcalTokenPath string

// gcalAuthCmd runs the OAuth desktop flow once and stores the token that the
// API server reads from google_calendar.token_path.
var gcalAuthCmd = &cobra.Command{
	Use:   "gcal-auth [credentials.json]",
	Short: "Authorise Google Calendar access and save a token",
	Long: `Authorise Google Calendar access for reminder mirroring.

Open the printed URL, sign in, then paste the authorisation code back here.
Service Account credentials need no token and can skip this step.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGcalAuth,
}

func init() {
	gcalAuthCmd.Flags().StringVar(&gcalTokenPath, "token", gcalendar.DefaultTokenPath, "where to write the token")
}

func runGcalAuth(cmd *cobra.Command, args []string) error {
	credsPath := "google-credentials.json"
	if len(args) > 0 {
		credsPath = args[0]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", credsPath, err)
	}

	config, err := gcalendar.AuthConfig(data)
	if err != nil {
		return fmt.Errorf("%w (is %q an OAuth desktop app credentials file?)", err, credsPath)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Step 1: open this URL and sign in with your Google account:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, config.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "Step 2: paste the authorisation code and press Enter: ")

	code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && code == "" {
		return fmt.Errorf("read authorisation code: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tok, err := config.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("exchange authorisation code: %w", err)
	}

	if err := gcalendar.SaveToken(gcalTokenPath, tok); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nToken saved to %s. Restart the API server to enable calendar mirroring.\n", gcalTokenPath)
	return nil
}
