// openhours inspects availability schedule documents: it validates them and
// answers point, next-change, range and slot queries from the command line.
//
// Schedule documents are JSON or YAML files with the shape
//
//	{
//	  "weekly": [{"weekdays": "MTWTF--", "times": [{"from": "09:00", "to": "17:00"}]}],
//	  "overrides": [{"from": "2025-12-25", "to": "2025-12-25", "rules": []}],
//	  "timezone": "Europe/Berlin"
//	}
//
// where weekly may instead be the literal true for always-open.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "openhours:", err)
		os.Exit(1)
	}
}
