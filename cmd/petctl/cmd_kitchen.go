package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"lovepet/internal/app/kitchen"
	"lovepet/internal/domain/cooking"

	"github.com/spf13/cobra"
)

func newCookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cook <ingredient>...",
		Short: "Cook a dish and offer it to the pet",
		Long: `Cook puts up to five ingredients in the dish, applies the actions in
order and serves the result. A dish the pet accepts joins the recipe book
and the inventory.

  petctl cook milk banana --actions mix,mix,cook`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, _ := cmd.Flags().GetStringSlice("actions")
			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := app.Kitchen.Cook(cmd.Context(), kitchen.CookRequest{
				PetID:       petID,
				Ingredients: args,
				Actions:     actions,
			})
			if err != nil {
				return err
			}
			return emit(cmd, resp, func(w io.Writer) {
				fmt.Fprintln(w, resp.Reaction)
				if !resp.Evaluation.Accepted {
					fmt.Fprintf(w, "rejected: %s\n", resp.Evaluation.Reason)
					return
				}
				if resp.Recipe != nil {
					tag := ""
					if resp.NewRecipe {
						tag = " (new!)"
					}
					fmt.Fprintf(w, "%s%s, quality %d\n  id: %s\n", resp.Recipe.Name, tag, resp.Evaluation.Quality, resp.Recipe.ID)
				}
				printView(w, resp.State)
			})
		},
	}
	cmd.Flags().StringSlice("actions", nil, "Cooking actions in order: mix, beat, cook, cool, season")
	return cmd
}

func newFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed <recipe-id>",
		Short: "Feed the pet one serving from the inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := app.Kitchen.Feed(cmd.Context(), kitchen.FeedRequest{PetID: petID, RecipeID: args[0]})
			if err != nil {
				return err
			}
			return emit(cmd, resp, func(w io.Writer) {
				fmt.Fprintf(w, "ate %s (hunger %d, happiness %d, satisfaction %d)\n",
					resp.Item.Name, resp.Effects.Hunger, resp.Effects.Happiness, resp.Effects.Satisfaction)
				printView(w, resp.State)
			})
		},
	}
}

func newRecipesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List discovered recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			book, err := app.Kitchen.Recipes(cmd.Context(), petID)
			if err != nil {
				return err
			}
			return emit(cmd, book, func(w io.Writer) {
				if len(book) == 0 {
					fmt.Fprintln(w, "No recipes yet.")
					return
				}
				for _, r := range book {
					fmt.Fprintf(w, "%-36s quality %d  %s\n", r.Name, r.Quality, r.ID)
				}
			})
		},
	}
}

func newInventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "List cooked food waiting to be eaten",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			inv, err := app.Kitchen.Inventory(cmd.Context(), petID)
			if err != nil {
				return err
			}
			return emit(cmd, inv, func(w io.Writer) {
				if len(inv) == 0 {
					fmt.Fprintln(w, "The pantry is empty.")
					return
				}
				for _, item := range inv {
					fmt.Fprintf(w, "%2dx %-36s %s\n", item.Quantity, item.Name, item.RecipeID)
				}
			})
		},
	}
}

func newIngredientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingredients",
		Short: "List the ingredients the pet can eat at its phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all, _ := cmd.Flags().GetBool("all"); all {
				catalog := cooking.Catalog()
				return emit(cmd, catalog, func(w io.Writer) {
					for _, ing := range catalog {
						fmt.Fprintf(w, "%-12s %-10s complexity %d, from phase %d\n", ing.ID, ing.Group, ing.Complexity, firstPhase(ing))
					}
				})
			}

			app, petID, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := app.Kitchen.Ingredients(cmd.Context(), petID)
			if err != nil {
				return err
			}
			return emit(cmd, resp, func(w io.Writer) {
				fmt.Fprintf(w, "complexity limit %d\n", resp.Limit)
				names := make([]string, 0, len(resp.Ingredients))
				for _, ing := range resp.Ingredients {
					names = append(names, ing.ID)
				}
				fmt.Fprintln(w, strings.Join(names, ", "))
			})
		},
	}
	cmd.Flags().Bool("all", false, "List the whole catalog regardless of phase")
	return cmd
}

func firstPhase(ing cooking.Ingredient) int {
	if len(ing.Phases) == 0 {
		return 0
	}
	return int(slices.Min(ing.Phases))
}
