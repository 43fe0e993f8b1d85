package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"replyflow.app/api/common/logger"
	"replyflow.app/api/internal/model"
)

func configCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change automation settings",
	}
	cmd.AddCommand(configShowCmd(a), configSetCmd(a))
	return cmd
}

func configShowCmd(a *app) *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the automation settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := a.loadState(cmd.Context())
			if err != nil {
				return err
			}
			cfg := state.Config()
			if cfg == nil {
				return errors.New("no configuration loaded")
			}

			secret := logger.Mask
			if showSecrets {
				secret = func(s string) string { return s }
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "access token\t%s\n", orUnset(secret(cfg.AccessToken)))
			fmt.Fprintf(w, "instagram id\t%s\n", orUnset(cfg.InstagramID))
			fmt.Fprintf(w, "engine url\t%s\n", orUnset(cfg.BaseURL))
			fmt.Fprintf(w, "api key\t%s\n", orUnset(secret(cfg.APIKey)))
			fmt.Fprintf(w, "delay\t%ds\n", cfg.DelaySeconds)
			fmt.Fprintf(w, "reply to comment\t%s\n", onOff(cfg.ReplyToComment))
			fmt.Fprintf(w, "send dm\t%s\n", onOff(cfg.SendDM))
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print the access token and API key in full")
	return cmd
}

func configSetCmd(a *app) *cobra.Command {
	var (
		accessToken, instagramID, baseURL, apiKey string
		delay                                     int
		replyToComment, sendDM                    bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change automation settings; only the flags you pass are sent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			var patch model.AutomationConfigPatch
			changed := false
			if flags.Changed("access-token") {
				patch.AccessToken, changed = &accessToken, true
			}
			if flags.Changed("instagram-id") {
				patch.InstagramID, changed = &instagramID, true
			}
			if flags.Changed("base-url") {
				patch.BaseURL, changed = &baseURL, true
			}
			if flags.Changed("api-key") {
				patch.APIKey, changed = &apiKey, true
			}
			if flags.Changed("delay") {
				if delay < 0 {
					return errors.New("delay cannot be negative")
				}
				patch.DelaySeconds, changed = &delay, true
			}
			if flags.Changed("reply-to-comment") {
				patch.ReplyToComment, changed = &replyToComment, true
			}
			if flags.Changed("send-dm") {
				patch.SendDM, changed = &sendDM, true
			}
			if !changed {
				return errors.New("nothing to change: pass at least one setting flag")
			}

			state, err := a.loadState(cmd.Context())
			if err != nil {
				return err
			}
			if err := state.UpdateConfig(cmd.Context(), patch); err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Settings saved\n", ok())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&accessToken, "access-token", "", "Instagram access token")
	f.StringVar(&instagramID, "instagram-id", "", "Instagram account id")
	f.StringVar(&baseURL, "base-url", "", "automation engine base URL")
	f.StringVar(&apiKey, "api-key", "", "automation engine API key")
	f.IntVar(&delay, "delay", model.DefaultDelaySeconds, "seconds to wait before replying")
	f.BoolVar(&replyToComment, "reply-to-comment", true, "reply publicly to the comment")
	f.BoolVar(&sendDM, "send-dm", true, "send the link by direct message")
	return cmd
}

func orUnset(s string) string {
	if s == "" {
		return color.New(color.Faint).Sprint("(not set)")
	}
	return s
}

func onOff(v bool) string {
	if v {
		return color.New(color.FgGreen).Sprint("on")
	}
	return color.New(color.FgYellow).Sprint("off")
}
