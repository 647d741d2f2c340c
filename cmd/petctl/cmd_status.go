package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"lovepet/internal/app/replay"
	"lovepet/internal/app/status"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the pet's profile page",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := app.Status.Execute(cmd.Context(), status.Request{PetID: petID})
			if err != nil {
				return err
			}
			return emit(cmd, resp, func(w io.Writer) { printStatus(w, resp) })
		},
	}
}

func printStatus(w io.Writer, s status.Response) {
	fmt.Fprintf(w, "%s the %s, %d minutes old\n", s.PetID, s.PhaseName, s.AgeMinutes)
	fmt.Fprintf(w, "growth %.0f%% (time %.0f%%, sleep %.0f%%, care %.0f%%)\n",
		s.Progress.Overall*100, s.Progress.Time.Progress*100, s.Progress.Sleep.Progress*100, s.Progress.Interactions.Progress*100)
	state := "awake"
	if s.Sleeping {
		state = "asleep"
	}
	fmt.Fprintf(w, "energy %d, %s, mood %s\n", s.Energy, state, s.Mood)
	fmt.Fprintf(w, "temperament: %s\n", strings.Join(s.Temperament.Descriptors, ", "))
	if len(s.Personality.Descriptors) > 0 {
		fmt.Fprintf(w, "personality: %s\n", strings.Join(s.Personality.Descriptors, ", "))
	}
	if s.Primary != nil {
		fmt.Fprintf(w, "profile: %s\n", s.Primary.Name)
	}
	for _, h := range s.StrongHabits {
		fmt.Fprintf(w, "habit: %s (%d)\n", h.Description, h.Strength)
	}
	for _, m := range s.Recent {
		fmt.Fprintf(w, "memory: %s (%s)\n", m.Event, m.Emotion)
	}
	fmt.Fprintf(w, "recipes known: %d\n", s.Recipes)
}

func newPetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pets",
		Short: "List the pets kept in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			ids, err := app.Pets.PetIDs(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd, map[string]any{"pets": ids}, func(w io.Writer) {
				if len(ids) == 0 {
					fmt.Fprintln(w, "No pets yet.")
					return
				}
				for _, id := range ids {
					fmt.Fprintln(w, id)
				}
			})
		},
	}
}

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List what happened to the pet, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			eventType, _ := cmd.Flags().GetString("type")
			since, _ := cmd.Flags().GetDuration("since")

			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			req := replay.Request{PetID: petID, Limit: limit, Type: eventType}
			if since > 0 {
				req.OccurredFrom = time.Now().Add(-since).Unix()
			}
			resp, err := app.Replay.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return emit(cmd, resp, func(w io.Writer) {
				if len(resp.Events) == 0 {
					fmt.Fprintln(w, "Nothing has happened yet.")
					return
				}
				for _, e := range resp.Events {
					fmt.Fprintf(w, "%s  %-18s %s\n", e.OccurredAt.Local().Format(time.DateTime), e.Type, summarize(e.Payload))
				}
			})
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of entries")
	cmd.Flags().String("type", "", "Only entries of this type, e.g. memory_formed")
	cmd.Flags().Duration("since", 0, "Only entries newer than this, e.g. 2h")
	return cmd
}

// summarize picks the payload fields worth a glance.
func summarize(payload map[string]any) string {
	var parts []string
	for _, key := range []string{"action", "phase_name", "habit", "event", "name", "reason"} {
		if v, ok := payload[key]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", key, v))
		}
	}
	return strings.Join(parts, " ")
}
