package models

import "time"

// Expense is a back-office cost entry consumed by the ledger rollups.
type Expense struct {
	ID       string    `bson:"id" json:"id"`
	Category string    `bson:"category" json:"category"`
	Amount   float64   `bson:"amount" json:"amount"`
	Date     time.Time `bson:"date" json:"date"`
	Notes    string    `bson:"notes,omitempty" json:"notes,omitempty"`
}
