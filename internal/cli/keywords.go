package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"replyflow.app/api/common/id"
	"replyflow.app/api/internal/model"
)

func keywordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keywords",
		Aliases: []string{"kw"},
		Short:   "List and edit keyword triggers",
	}
	cmd.AddCommand(
		keywordsListCmd(a),
		keywordsAddCmd(a),
		keywordsEditCmd(a),
		keywordsRmCmd(a),
		keywordsToggleCmd(a),
	)
	return cmd
}

func keywordsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List keywords, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := a.loadState(cmd.Context())
			if err != nil {
				return err
			}

			keywords := state.Keywords()
			out := cmd.OutOrStdout()
			if len(keywords) == 0 {
				fmt.Fprintln(out, "No keywords yet. Add one with: replyctl keywords add <word> <link>")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWORD\tSTATUS\tTRIGGERS\tLINK")
			for _, k := range keywords {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", k.ID, k.Word, statusLabel(k.Enabled), k.TriggersCount, k.Link)
			}
			return w.Flush()
		},
	}
}

func keywordsAddCmd(a *app) *cobra.Command {
	var (
		message  string
		button   string
		disabled bool
	)

	cmd := &cobra.Command{
		Use:   "add <word> <link>",
		Short: "Add a keyword trigger",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, link := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
			if word == "" || link == "" {
				return errors.New("word and link are required")
			}

			state, err := a.loadState(cmd.Context())
			if err != nil {
				return err
			}

			kw, err := state.AddKeyword(cmd.Context(), model.KeywordDraft{
				Word:       word,
				Link:       link,
				Message:    message,
				ButtonText: button,
				Enabled:    !disabled,
			})
			if err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %q (%d)\n", ok(), kw.Word, kw.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "DM text sent with the link")
	cmd.Flags().StringVarP(&button, "button", "b", "", "button label in the DM")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "create the keyword switched off")
	return cmd
}

func keywordsEditCmd(a *app) *cobra.Command {
	var (
		word, link, message, button string
		enabled                     bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a keyword; only the flags you pass are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keywordID, err := id.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid keyword id %q", args[0])
			}

			flags := cmd.Flags()
			var patch model.KeywordPatch
			if flags.Changed("word") {
				if strings.TrimSpace(word) == "" {
					return errors.New("word cannot be blank")
				}
				patch.Word = &word
			}
			if flags.Changed("link") {
				if strings.TrimSpace(link) == "" {
					return errors.New("link cannot be blank")
				}
				patch.Link = &link
			}
			if flags.Changed("message") {
				patch.Message = &message
			}
			if flags.Changed("button") {
				patch.ButtonText = &button
			}
			if flags.Changed("enabled") {
				patch.Enabled = &enabled
			}
			if patch.IsEmpty() {
				return errors.New("nothing to change: pass at least one of --word, --link, --message, --button, --enabled")
			}

			state, err := a.loadState(cmd.Context())
			if err != nil {
				return err
			}
			if err := state.UpdateKeyword(cmd.Context(), keywordID, patch); err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %d\n", ok(), keywordID)
			return nil
		},
	}

	cmd.Flags().StringVar(&word, "word", "", "trigger word")
	cmd.Flags().StringVar(&link, "link", "", "link sent in the DM")
	cmd.Flags().StringVarP(&message, "message", "m", "", "DM text")
	cmd.Flags().StringVarP(&button, "button", "b", "", "button label")
	cmd.Flags().BoolVar(&enabled, "enabled", true, "whether the keyword is active")
	return cmd
}

func keywordsRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a keyword",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keywordID, err := id.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid keyword id %q", args[0])
			}

			state, err := a.loadState(cmd.Context())
			if err != nil {
				return err
			}
			if err := state.DeleteKeyword(cmd.Context(), keywordID); err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %d\n", ok(), keywordID)
			return nil
		},
	}
}

func keywordsToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Switch a keyword on or off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keywordID, err := id.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid keyword id %q", args[0])
			}

			state, err := a.loadState(cmd.Context())
			if err != nil {
				return err
			}
			enabled, err := state.ToggleKeyword(cmd.Context(), keywordID)
			if err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d is now %s\n", ok(), keywordID, statusLabel(enabled))
			return nil
		},
	}
}

func statusLabel(enabled bool) string {
	if enabled {
		return color.New(color.FgGreen).Sprint("active")
	}
	return color.New(color.FgYellow).Sprint("paused")
}

func ok() string {
	return color.New(color.FgGreen).Sprint("✓")
}
