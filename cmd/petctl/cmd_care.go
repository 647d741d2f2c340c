package main

import (
	"fmt"
	"io"

	"lovepet/internal/app/care"
	"lovepet/internal/app/petstate"

	"github.com/spf13/cobra"
)

func newActCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "act <action>",
		Short: "Apply a care action (play, feed, clean, talk, comfort, teach, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, _ := cmd.Flags().GetString("event")
			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := app.Care.Act(cmd.Context(), care.Request{PetID: petID, Action: args[0], Event: event})
			if err != nil {
				return err
			}
			return emit(cmd, resp, func(w io.Writer) { printCare(w, resp) })
		},
	}
	cmd.Flags().String("event", "", "Describe the moment, used if it becomes a memory")
	return cmd
}

func newSleepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sleep",
		Short: "Put the pet to bed",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := app.Care.Sleep(cmd.Context(), petID)
			if err != nil {
				return err
			}
			return emit(cmd, resp, func(w io.Writer) { printCare(w, resp) })
		},
	}
}

func newWakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wake",
		Short: "Wake the pet up",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := app.Care.Wake(cmd.Context(), petID)
			if err != nil {
				return err
			}
			return emit(cmd, resp, func(w io.Writer) { printCare(w, resp) })
		},
	}
}

func newTickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Settle elapsed time without doing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := app.Care.Tick(cmd.Context(), petID)
			if err != nil {
				return err
			}
			return emit(cmd, resp, func(w io.Writer) {
				fmt.Fprintf(w, "settled %d minutes\n", resp.SettledMinutes)
				if resp.Transitioned {
					fmt.Fprintf(w, "grew into %s\n", resp.State.PhaseName)
				}
				printView(w, resp.State)
			})
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start over with a newborn pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			view, err := app.Care.Reset(cmd.Context(), petID)
			if err != nil {
				return err
			}
			return emit(cmd, view, func(w io.Writer) {
				fmt.Fprintf(w, "a new pet is born: %s\n", view.PetID)
				printView(w, view)
			})
		},
	}
}

func printCare(w io.Writer, resp care.Response) {
	fmt.Fprintf(w, "%s", resp.Result.Action)
	if resp.SettledMinutes > 0 {
		fmt.Fprintf(w, " (after %d minutes)", resp.SettledMinutes)
	}
	fmt.Fprintln(w)
	if m := resp.Result.Memory; m != nil {
		fmt.Fprintf(w, "remembered: %s (%s, %d)\n", m.Event, m.Emotion, m.Intensity)
	}
	if resp.Result.HabitFormed {
		fmt.Fprintln(w, "a habit is forming")
	}
	if resp.Result.Transitioned {
		fmt.Fprintf(w, "grew into %s\n", resp.State.PhaseName)
	}
	printView(w, resp.State)
}

func printView(w io.Writer, v petstate.View) {
	asleep := ""
	if v.Pet.Sleeping {
		asleep = ", asleep"
	}
	fmt.Fprintf(w, "%s: %s, energy %d%s, mood %s\n", v.PetID, v.PhaseName, v.Pet.Energy, asleep, v.Mood)
}
