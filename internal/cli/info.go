package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func statsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := a.loadState(cmd.Context())
			if err != nil {
				return err
			}

			stats := state.Stats()
			bold := color.New(color.Bold)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total triggers:   %s\n", bold.Sprint(stats.TotalTriggers))
			fmt.Fprintf(out, "Active keywords:  %s\n", bold.Sprint(stats.ActiveKeywords))
			fmt.Fprintf(out, "Messages sent:    %s\n", bold.Sprint(stats.MessagesSent))
			if stats.LastActivity != nil {
				fmt.Fprintf(out, "Last activity:    %s\n", stats.LastActivity.Local().Format("2006-01-02 15:04"))
			} else {
				fmt.Fprintln(out, "Last activity:    never")
			}
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.connect()
			if err != nil {
				return err
			}
			profile, err := client.Me(cmd.Context())
			if err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s>\n",
				color.New(color.FgCyan, color.Bold).Sprintf("[%s]", profile.Initials()),
				profile.DisplayName(),
				profile.Email,
			)
			return nil
		},
	}
}

func contractCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contract",
		Short: "Print the JSON Schemas of the rows the reply engine reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.connect()
			if err != nil {
				return err
			}
			raw, err := client.Contract(cmd.Context())
			if err != nil {
				return explain(err)
			}

			var pretty bytes.Buffer
			if err := json.Indent(&pretty, raw, "", "  "); err != nil {
				return fmt.Errorf("format contract: %w", err)
			}
			pretty.WriteByte('\n')
			_, err = pretty.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
