// Package main provides roomctl, a command-line front end to the room
// filter pipeline over an exported listings file
package main

import (
	"fmt"
	"os"

	"roomfinder/internal/model"
	"roomfinder/internal/observability"
	"roomfinder/internal/repository"
	"roomfinder/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	listingsFile string
	verbose      bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roomctl",
		Short: "Inspect and filter student housing listings",
		Long: `roomctl runs the room listing pipeline over a JSON listings file.

The file holds either {"rooms": [...], "messes": [...]} or a bare array of
rooms. Duplicate room ids are dropped before any command runs.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			observability.Setup(observability.LogConfig{
				Level:       level,
				Format:      "console",
				Output:      cmd.ErrOrStderr(),
				ServiceName: "roomctl",
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&listingsFile, "file", "f", "listings.json", "listings JSON file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(newFeaturesCmd())
	cmd.AddCommand(newFilterCmd())
	return cmd
}

// loadRooms reads the listings file and drops duplicate rooms
func loadRooms() ([]*model.Room, error) {
	snap, err := repository.LoadSnapshotFile(listingsFile)
	if err != nil {
		return nil, err
	}
	rooms := service.DeduplicateRooms(snap.Rooms)
	log.Debug().
		Str("file", listingsFile).
		Int("rooms", len(snap.Rooms)).
		Int("unique", len(rooms)).
		Msg("listings loaded")
	return rooms, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
