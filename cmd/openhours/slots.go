package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openhours/openhours/availability"
)

func initSlotsCmd() *cobra.Command {
	var (
		from, to, now  string
		duration, step int
	)
	cmd := &cobra.Command{
		Use:   "slots <schedule>",
		Short: "Expand open hours into bookable slot start times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchedule(args[0])
			if err != nil {
				return err
			}
			windowStart, err := parseStampFlag("from", from)
			if err != nil {
				return err
			}
			windowEnd, err := parseStampFlag("to", to)
			if err != nil {
				return err
			}
			cutoff := windowStart
			if now != "" {
				if cutoff, err = parseStampFlag("now", now); err != nil {
					return err
				}
			}
			if step <= 0 {
				step = duration
			}

			slots := availability.Slots(s, windowStart, windowEnd, duration, step, nil, cutoff)
			if jsonOutput() {
				out := make([]string, 0, len(slots))
				for _, t := range slots {
					out = append(out, t.String())
				}
				return json.NewEncoder(os.Stdout).Encode(out)
			}
			for _, t := range slots {
				fmt.Println(t)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "window start (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&to, "to", "", "window end, inclusive (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&now, "now", "", "skip slots starting before this instant")
	cmd.Flags().IntVar(&duration, "duration", 0, "slot length in minutes")
	cmd.Flags().IntVar(&step, "step", 0, "gap between slot starts in minutes (defaults to --duration)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}
