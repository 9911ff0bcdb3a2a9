package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/later/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var date, clock string

	cmd := &cobra.Command{
		Use:     "add [INDEX] [NAME...]",
		Aliases: []string{"a"},
		Short:   "Add an entry to a list",
		Long: "Add an entry. With an INDEX the entry goes inside the item at that path;\n" +
			"an entry there becomes a sublist. Without a NAME you are prompted for\n" +
			"title, date and time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var path domain.IndexPath
			if len(args) > 0 {
				if p, err := domain.ParseIndexPath(args[0]); err == nil {
					path, args = p, args[1:]
				}
			}

			info := domain.Info{Title: strings.TrimSpace(strings.Join(args, " "))}
			if info.Title == "" {
				var err error
				if info, err = app.Prompt.Info(nil); err != nil {
					return err
				}
			}
			if date != "" || clock != "" {
				when, err := domain.ParseParts(date, clock, app.now())
				if err != nil {
					return err
				}
				info.Date = when
			}

			list, err := app.Lists.AddItem(context.Background(), app.list, path, info)
			if err != nil {
				return err
			}
			return printList(cmd, app, list)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "due date (yyyy/mm/dd)")
	cmd.Flags().StringVar(&clock, "time", "", "due time (hh:mm); today when --date is absent")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove INDEX",
		Aliases: []string{"rm", "r"},
		Short:   "Remove an entry or sublist",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := domain.ParseIndexPath(args[0])
			if err != nil {
				return err
			}

			var confirm func(*domain.Node) (bool, error)
			if !yes {
				confirm = func(target *domain.Node) (bool, error) {
					if target.IsList() {
						return app.Prompt.Confirm(fmt.Sprintf("Remove sublist '%s'? (y/N): ", target.Title), false)
					}
					return app.Prompt.Confirm(fmt.Sprintf("Remove entry '%s'? (Y/n): ", target.Title), true)
				}
			}

			list, err := app.Lists.RemoveItem(context.Background(), app.list, path, confirm)
			if err != nil {
				return err
			}
			return printList(cmd, app, list)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")

	return cmd
}

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "move FROM TO",
		Aliases: []string{"mv", "m"},
		Short:   "Move an item to another position",
		Long: "Move the item at FROM so that it sits at TO. TO is read after the item\n" +
			"has been taken out. If it cannot be placed there the list is left unchanged.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := domain.ParseIndexPath(args[0])
			if err != nil {
				return err
			}
			to, err := domain.ParseIndexPath(args[1])
			if err != nil {
				return err
			}

			list, err := app.Lists.MoveItem(context.Background(), app.list, from, to)
			if err != nil {
				return err
			}
			return printList(cmd, app, list)
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	var title, date, clock string
	var noDate bool

	cmd := &cobra.Command{
		Use:     "edit INDEX",
		Aliases: []string{"e"},
		Short:   "Edit the title and date of an item",
		Long: "Edit an item. Without flags you are prompted with the current values;\n" +
			"--title, --date, --time and --no-date change just those fields.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := domain.ParseIndexPath(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			headless := flags.Changed("title") || flags.Changed("date") || flags.Changed("time") || noDate
			edit := func(current *domain.Node) (domain.Info, error) {
				if headless {
					return applyEditFlags(current.Info(), title, date, clock, noDate, app)
				}
				return app.Prompt.Info(current)
			}

			list, err := app.Lists.EditItem(context.Background(), app.list, path, edit)
			if err != nil {
				return err
			}
			return printList(cmd, app, list)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&date, "date", "", "new due date (yyyy/mm/dd)")
	cmd.Flags().StringVar(&clock, "time", "", "new due time (hh:mm)")
	cmd.Flags().BoolVar(&noDate, "no-date", false, "remove the date")
	cmd.MarkFlagsMutuallyExclusive("no-date", "date")
	cmd.MarkFlagsMutuallyExclusive("no-date", "time")

	return cmd
}

// applyEditFlags overlays flag values on info. A date or time flag keeps the
// other half of an existing value.
func applyEditFlags(info domain.Info, title, date, clock string, noDate bool, app *App) (domain.Info, error) {
	if title != "" {
		info.Title = title
	}
	if noDate {
		info.Date = nil
		return info, nil
	}
	if date == "" && clock == "" {
		return info, nil
	}

	if info.Date != nil {
		if date == "" {
			date = info.Date.DateString()
		}
		if clock == "" {
			clock = info.Date.TimeString()
		}
	}
	when, err := domain.ParseParts(date, clock, app.now())
	if err != nil {
		return domain.Info{}, err
	}
	info.Date = when
	return info, nil
}

func newSortCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "sort",
		Aliases: []string{"s"},
		Short:   "Sort a list and its sublists by date",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Lists.SortList(context.Background(), app.list)
			if err != nil {
				return err
			}
			return printList(cmd, app, list)
		},
	}
}
