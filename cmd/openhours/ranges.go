package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openhours/openhours/availability"
)

func initRangesCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "ranges <schedule>",
		Short: "List every open interval between two dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchedule(args[0])
			if err != nil {
				return err
			}
			start, err := parseDateFlag("from", from)
			if err != nil {
				return err
			}
			end, err := parseDateFlag("to", to)
			if err != nil {
				return err
			}

			intervals := availability.AvailableRanges(s, start, end)
			if jsonOutput() {
				out := make([]map[string]string, 0, len(intervals))
				for _, iv := range intervals {
					out = append(out, map[string]string{
						"from": iv.From.String(),
						"to":   iv.To.String(),
					})
				}
				return json.NewEncoder(os.Stdout).Encode(out)
			}
			for _, iv := range intervals {
				fmt.Printf("%s .. %s\n", iv.From, iv.To)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last date, inclusive (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
