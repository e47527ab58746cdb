package models

import "time"

// User is the database row for a directory identity record.
type User struct {
	UserID                string     `db:"user_id"`
	Email                 string     `db:"email"`
	Name                  string     `db:"name"`
	Role                  string     `db:"role"`
	AgreementAcceptedDate *time.Time `db:"agreement_accepted_date"`
	AuditFields
}
