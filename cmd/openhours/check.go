package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openhours/openhours/availability"
)

func initCheckCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "check <schedule>",
		Short: "Report whether the schedule is open at an instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchedule(args[0])
			if err != nil {
				return err
			}
			stamp, err := parseStampFlag("at", at)
			if err != nil {
				return err
			}
			open := availability.IsAvailable(s, stamp)

			if jsonOutput() {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"at":        stamp.String(),
					"available": open,
				})
			}
			if open {
				fmt.Println("available")
			} else {
				fmt.Println("unavailable")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "instant to check (YYYY-MM-DDTHH:MM)")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
