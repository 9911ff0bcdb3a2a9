package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/later/internal/cli/formatter"
	"github.com/alexanderramin/later/internal/domain"
	"github.com/alexanderramin/later/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the collaborators used by CLI commands.
type App struct {
	Lists  service.ListService
	Prompt Prompter
	Now    func() time.Time

	// Setup, when set, runs before any command with the --config value and
	// fills in the fields above.
	Setup func(configFile string) error

	list       string
	configFile string
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// NewRootCmd creates the top-level "later" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "later [LIST NAME] [command]",
		Short: "Nested to-do lists for the terminal",
		Long: "Nested to-do lists for the terminal.\n\n" +
			"Items are addressed by comma-separated index paths starting at the top\n" +
			"level, e.g. `later add 1,3,1,2`. Prefix any command with a list name to\n" +
			"work on that list instead of the default one.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil {
				return nil
			}
			return app.Setup(app.configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Lists.Show(context.Background(), app.list)
			if err != nil {
				return err
			}
			return printList(cmd, app, list)
		},
	}

	root.PersistentFlags().StringVarP(&app.list, "list", "L", domain.DefaultList, "name of the to-do list to use")
	root.PersistentFlags().StringVar(&app.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/later/config.yaml)")

	root.AddCommand(
		newAddCmd(app),
		newRemoveCmd(app),
		newMoveCmd(app),
		newEditCmd(app),
		newSortCmd(app),
		newListCmd(app),
	)

	return root
}

// Execute builds the command tree and runs it with args.
func Execute(app *App, args []string) error {
	root := NewRootCmd(app)
	root.SetArgs(prepareArgs(root, args))
	return root.Execute()
}

// prepareArgs turns the first positional argument into --list when it is not
// a command, so `later groceries add milk` and `later --config f.yaml groceries`
// both reach the groceries list. Root flags before it are skipped along with
// their values.
func prepareArgs(root *cobra.Command, args []string) []string {
	i := firstPositional(root.PersistentFlags(), args)
	if i < 0 || isCommandName(root, args[i]) {
		return args
	}
	out := make([]string, 0, len(args))
	out = append(out, args[:i]...)
	out = append(out, "--list="+args[i])
	out = append(out, args[i+1:]...)
	return out
}

// firstPositional returns the index of the first argument that is neither a
// flag nor a flag's value, or -1.
func firstPositional(flags *pflag.FlagSet, args []string) int {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return -1
		case !strings.HasPrefix(arg, "-") || arg == "-":
			return i
		case strings.Contains(arg, "="):
			continue
		}

		var f *pflag.Flag
		if name, ok := strings.CutPrefix(arg, "--"); ok {
			f = flags.Lookup(name)
		} else if len(arg) == 2 {
			f = flags.ShorthandLookup(arg[1:])
		}
		if f != nil && f.NoOptDefVal == "" {
			i++
		}
	}
	return -1
}

func isCommandName(root *cobra.Command, name string) bool {
	switch name {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func printList(cmd *cobra.Command, app *App, list *domain.Node) error {
	_, err := fmt.Fprint(cmd.OutOrStdout(), formatter.RenderList(list, app.now()))
	return err
}
