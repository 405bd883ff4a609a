package models

import "time"

// Now is the wall clock used for record timestamps, in UTC
func Now() time.Time {
	return time.Now().UTC()
}
