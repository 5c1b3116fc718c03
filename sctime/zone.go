package sctime

import (
	"time"

	_ "time/tzdata"
)

// ValidZone reports whether name is a known IANA timezone identifier.
// "Local" and the empty string are rejected; the caller decides whether an
// absent timezone is acceptable.
func ValidZone(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
