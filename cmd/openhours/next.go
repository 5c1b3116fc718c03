package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/openhours/openhours/availability"
)

func initNextCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "next <schedule>",
		Short: "Find the next available instant at or after --from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchedule(args[0])
			if err != nil {
				return err
			}
			stamp, err := parseStampFlag("from", from)
			if err != nil {
				return err
			}
			maxDays, err := intFlagOrEnv(cmd.Flags(), "max-days", "OPENHOURS_MAX_SCAN_DAYS")
			if err != nil {
				return err
			}

			next, ok := availability.NextAvailable(s, stamp, maxDays)
			if !ok {
				return errors.Errorf("no available time within %d days of %s", maxDays, stamp)
			}
			if jsonOutput() {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{"next": next.String()})
			}
			fmt.Println(next)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "instant to search from (YYYY-MM-DDTHH:MM)")
	cmd.Flags().Int("max-days", availability.DefaultMaxScanDays, "forward scan bound in days")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func initNextClosedCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "next-closed <schedule>",
		Short: "Find the next unavailable instant at or after --from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchedule(args[0])
			if err != nil {
				return err
			}
			stamp, err := parseStampFlag("from", from)
			if err != nil {
				return err
			}
			next, ok := availability.NextUnavailable(s, stamp)
			if !ok {
				return errors.Errorf("no unavailable time found after %s", stamp)
			}
			if jsonOutput() {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{"next": next.String()})
			}
			fmt.Println(next)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "instant to search from (YYYY-MM-DDTHH:MM)")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
