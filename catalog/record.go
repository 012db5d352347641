package catalog

import (
	"fmt"
)

// Records is an alias type for a slice of Record.
type Records = []Record

// Record is an immutable value representing one catalog entry.
//
// While its properties are exported, it should only be constructed with the
// supplied factory method BuildRecord, which enforces the year invariant.
// Identity is irrelevant beyond title matching for removal; two records with
// equal fields are interchangeable.
type Record struct {
	Title  string
	Author string
	Year   int
}

// BuildRecord is a factory method for Record.
//
// It populates the Record with the given scalar input.
// Returns ErrYearNotPositive if the year is not a positive integer.
func BuildRecord(title string, author string, year int) (Record, error) {
	if year <= 0 {
		return Record{}, ErrYearNotPositive
	}

	return Record{
		Title:  title,
		Author: author,
		Year:   year,
	}, nil
}

// String renders the record for display.
func (r Record) String() string {
	return fmt.Sprintf("Title: %q, Author: %s, Year: %d", r.Title, r.Author, r.Year)
}
