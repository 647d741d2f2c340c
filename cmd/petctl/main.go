package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"lovepet/internal/bootstrap"
	"lovepet/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "petctl",
		Short: "Raise a virtual pet from the terminal",
		Long: `petctl drives the lovepet engine against a local SQLite file.

Every command settles the time that passed since the pet was last seen,
so a pet left alone keeps growing, tiring and forgetting between runs.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("db", "", "SQLite file (default from config, lovepet.db)")
	rootCmd.PersistentFlags().String("pet", "", "Pet id (default from config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log engine activity to stderr")

	rootCmd.AddCommand(
		newActCmd(),
		newSleepCmd(),
		newWakeCmd(),
		newTickCmd(),
		newResetCmd(),
		newStatusCmd(),
		newJournalCmd(),
		newPetsCmd(),
		// Kitchen
		newCookCmd(),
		newFeedCmd(),
		newRecipesCmd(),
		newInventoryCmd(),
		newIngredientsCmd(),
	)
	return rootCmd
}

// openApp builds the engine for one command. The CLI is always backed by a
// store that outlives the process, so a memory store becomes sqlite.
func openApp(cmd *cobra.Command) (*bootstrap.App, string, error) {
	configPath, _ := cmd.Flags().GetString("config")
	dbPath, _ := cmd.Flags().GetString("db")
	petID, _ := cmd.Flags().GetString("pet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, "", err
	}
	if cfg.Store.Driver == config.StoreMemory {
		cfg.Store.Driver = config.StoreSQLite
	}
	if dbPath != "" {
		cfg.Store.Driver = config.StoreSQLite
		cfg.Store.SQLitePath = dbPath
	}

	var logOut io.Writer = io.Discard
	if verbose {
		logOut = cmd.ErrOrStderr()
		if cfg.Logging.Level == "" || cfg.Logging.Level == "info" {
			cfg.Logging.Level = "debug"
		}
	}
	app, err := bootstrap.Build(cmd.Context(), cfg, logOut)
	if err != nil {
		return nil, "", err
	}
	if petID == "" {
		petID = app.PetID
	}
	return app, petID, nil
}

// emit writes v as JSON under --json, otherwise calls text.
func emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut || text == nil {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(cmd.OutOrStdout())
	return nil
}
