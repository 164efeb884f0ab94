package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/2beens/workoutsheet/internal/sheets"
	"github.com/2beens/workoutsheet/internal/workout"
	"github.com/2beens/workoutsheet/pkg"

	"github.com/spf13/cobra"
)

func newWorksheetsCommand(src *sourceFlags) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "worksheets",
		Short: "List the worksheets a user can pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, closeFn, err := src.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			var names []string
			if all {
				names, err = client.Worksheets(cmd.Context())
			} else {
				lister := sheets.NewWorksheetLister(sheets.DefaultWorksheetsSkip, sheets.DefaultWorksheetsMax, 0)
				names, err = lister.Selectable(cmd.Context(), "", client)
			}
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every tab, not only the selectable ones")
	return cmd
}

func newDumpCommand(src *sourceFlags) *cobra.Command {
	var day string
	var pretty bool
	cmd := &cobra.Command{
		Use:   "dump <worksheet>",
		Short: "Parse a worksheet and print its days as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeFn, err := src.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			rows, err := client.ReadRows(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			plan := workout.ParseRows(rows)

			if day == "" {
				return writeJson(cmd.OutOrStdout(), plan.Map(), pretty)
			}
			d, ok := plan.Day(day)
			if !ok {
				return fmt.Errorf("day %q not found in %s", day, args[0])
			}
			return writeJson(cmd.OutOrStdout(), d.Exercises, pretty)
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "only print this day, e.g. \"DAY 1\"")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the json output")
	return cmd
}

func newLocateCommand(src *sourceFlags) *cobra.Command {
	var day, exercise string
	var setIndex int
	cmd := &cobra.Command{
		Use:   "locate <worksheet>",
		Short: "Print the cells a set update would write",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if setIndex < 0 || setIndex >= workout.MaxSets {
				return fmt.Errorf("set index must be in [0, %d)", workout.MaxSets)
			}
			client, closeFn, err := src.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			rows, err := client.ReadRows(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rowIdx, ok := workout.LocateExercise(rows, day, exercise)
			if !ok {
				return fmt.Errorf("exercise %q not found under %q", exercise, day)
			}

			cols := workout.ColumnsForSet(setIndex)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "row: %d\n", rowIdx+1)
			for _, c := range []struct {
				name string
				col  int
			}{
				{"load", cols.Load},
				{"reps", cols.Reps},
				{"intensity", cols.Intensity},
			} {
				cell, err := sheets.CellName(rowIdx+1, c.col)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", c.name, cell)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "day label, e.g. \"DAY 1\"")
	cmd.Flags().StringVar(&exercise, "exercise", "", "exercise name")
	cmd.Flags().IntVar(&setIndex, "set", 0, "0-based set index")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("exercise")
	return cmd
}

func newSetCommand(src *sourceFlags) *cobra.Command {
	upd := workout.SetUpdate{}
	cmd := &cobra.Command{
		Use:   "set <worksheet>",
		Short: "Write load, reps and intensity of one set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if upd.SetIndex < 0 || upd.SetIndex >= workout.MaxSets {
				return fmt.Errorf("set index must be in [0, %d)", workout.MaxSets)
			}
			if upd.Load == "" && upd.Reps == "" && upd.Intensity == "" {
				return errors.New("nothing to write, set at least one of --load, --reps, --intensity")
			}
			client, closeFn, err := src.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			found, err := workout.UpdateSet(cmd.Context(), client, args[0], upd)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("exercise %q not found under %q", upd.Exercise, upd.Day)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&upd.Day, "day", "", "day label, e.g. \"DAY 1\"")
	cmd.Flags().StringVar(&upd.Exercise, "exercise", "", "exercise name")
	cmd.Flags().IntVar(&upd.SetIndex, "set", 0, "0-based set index")
	cmd.Flags().StringVar(&upd.Load, "load", "", "load value")
	cmd.Flags().StringVar(&upd.Reps, "reps", "", "reps value")
	cmd.Flags().StringVar(&upd.Intensity, "intensity", "", "intensity value")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("exercise")
	return cmd
}

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash to put in the users table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := pkg.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func writeJson(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
