package main

import (
	"encoding/json"
	"fmt"

	"roomfinder/internal/service"

	"github.com/spf13/cobra"
)

func newFeaturesCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the canonical features present in the listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := loadRooms()
			if err != nil {
				return err
			}

			features := service.AvailableFeatures(rooms)
			out := cmd.OutOrStdout()
			if outputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(features)
			}
			for _, f := range features {
				fmt.Fprintln(out, f)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "output as a JSON array")
	return cmd
}
