// Package models provides the data structures used throughout the application.
package models

import "time"

// Account is a bank account transactions are imported into.
type Account struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name" yaml:"name"`
	Type     string  `json:"account_type" yaml:"account_type"`
	Balance  float64 `json:"balance" yaml:"balance"`
	IsActive bool    `json:"is_active"`
}

// Category is a spending category. Parent and Sub carry the two upper levels
// of the taxonomy ("BesoinsEssentiels" / "Logement").
type Category struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" yaml:"name"`
	Parent string `json:"parent_category" yaml:"parent"`
	Sub    string `json:"sub_category" yaml:"sub"`
}

// CategorizationRule is a user-defined keyword rule. Rules are consulted
// read-only by the categorizer in their stored order; deactivation is a flag
// flip, not a delete.
type CategorizationRule struct {
	ID         int64     `json:"id"`
	Keyword    string    `json:"keyword"`
	CategoryID int64     `json:"category_id"`
	MatchField string    `json:"match_field"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// RawRow is one parsed statement row before interpretation. All fields are
// text as they appeared in the file; blanks are allowed everywhere.
type RawRow struct {
	OperationDate  string
	ValueDate      string
	Label          string
	BankCategory   string
	ParentCategory string
	Merchant       string
	Amount         string
}
