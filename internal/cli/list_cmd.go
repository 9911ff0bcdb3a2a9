package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/later/internal/cli/formatter"
	"github.com/alexanderramin/later/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// promptForName is the --add value used when the flag is given bare.
const promptForName = " "

func newListCmd(app *App) *cobra.Command {
	var add, remove, edit string
	var yes bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "Show, create, remove or rename named lists",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			flags := cmd.Flags()
			out := cmd.OutOrStdout()

			// A bare --add does not consume the next word, so `list --add NAME`
			// arrives as a positional argument.
			if len(args) == 1 {
				if !flags.Changed("add") || add != promptForName {
					return fmt.Errorf("unexpected argument %q", args[0])
				}
				add = args[0]
			}

			switch {
			case flags.Changed("add"):
				info := domain.Info{Title: strings.TrimSpace(add)}
				if info.Title == "" {
					var err error
					if info, err = app.Prompt.Info(nil); err != nil {
						return err
					}
				}
				list, err := app.Lists.CreateList(ctx, info)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "added new to-do list: '%s'\n", list.Title)

			case flags.Changed("remove"):
				var confirm func(*domain.Node) (bool, error)
				if !yes {
					confirm = func(target *domain.Node) (bool, error) {
						return app.Prompt.Confirm(fmt.Sprintf("Remove list '%s'? (y/N): ", target.Title), false)
					}
				}
				if err := app.Lists.DeleteList(ctx, remove, confirm); err != nil {
					return err
				}
				fmt.Fprintf(out, "removed to-do list: '%s'\n", remove)

			case flags.Changed("edit"):
				if _, err := app.Lists.EditList(ctx, edit, func(current *domain.Node) (domain.Info, error) {
					return app.Prompt.Info(current)
				}); err != nil {
					return err
				}
			}

			named, err := app.Lists.Lists(ctx)
			if err != nil {
				return err
			}
			if len(named) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No named lists exist currently. (Use `later list --add` to create one.)")
				return nil
			}
			now := app.now()
			for _, list := range named {
				fmt.Fprint(out, formatter.RenderHeader(list, now))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&add, "add", "a", "", "create a new to-do list (prompts when no name is given)")
	allowBareFlag(cmd.Flags(), "add", promptForName)
	cmd.Flags().StringVarP(&remove, "remove", "r", "", "delete a to-do list")
	cmd.Flags().StringVarP(&edit, "edit", "e", "", "edit a to-do list's name and date")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the removal confirmation")
	cmd.MarkFlagsMutuallyExclusive("add", "remove", "edit")

	return cmd
}

// allowBareFlag lets the named flag appear without a value, in which case it
// takes noOpt.
func allowBareFlag(flags *pflag.FlagSet, name, noOpt string) {
	if f := flags.Lookup(name); f != nil {
		f.NoOptDefVal = noOpt
	}
}
