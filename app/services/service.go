// Package services holds the business logic between the HTTP controllers and
// the flat-file repositories: filtering, sorting, id generation, merge
// semantics for updates, dashboard aggregation and admin login.
package services

import "time"

// nowISO returns the current UTC time in the millisecond ISO form the
// collection files store, so date-prefix filters match what is persisted.
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
