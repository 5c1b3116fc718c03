package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/openhours/openhours/validate"
)

func initValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schedule>",
		Short: "Check a schedule document for structural and semantic problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			res := validate.Validate(doc)

			if jsonOutput() {
				if res.Errors == nil {
					res.Errors = []validate.Error{}
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else if res.Valid {
				fmt.Println("schedule is valid")
			} else {
				for _, e := range res.Errors {
					fmt.Println(e.String())
				}
			}

			if !res.Valid {
				return errors.Errorf("schedule has %d problem(s)", len(res.Errors))
			}
			return nil
		},
	}
}
