package dictionary

import "fmt"

// records the outcome of inserting a word for reporting
type InsertionResult struct {
	Word     string    // normalized word that was inserted
	Action   Action    // the action taken
	Previous *Metadata // metadata replaced by the insertion, nil for a new word
	Current  *Metadata // metadata stored after the insertion
}

// Replaced reports whether the insertion overwrote an existing translation.
func (ir *InsertionResult) Replaced() bool {
	_, ok := ir.Action.(ReplaceTranslation)
	return ok
}

func (ir *InsertionResult) String() string {
	if ir.Replaced() {
		return fmt.Sprintf("Action Taken: %s, Word: %s, Translation: %s -> %s",
			ir.Action, ir.Word, ir.Previous.Translation, ir.Current.Translation)
	}
	return fmt.Sprintf("Action Taken: %s, Word: %s, Translation: %s", ir.Action, ir.Word, ir.Current.Translation)
}

// Stats counts what happened to a dictionary since it was created.
type Stats struct {
	Inserted int
	Replaced int
	Removed  int
}

func (s Stats) String() string {
	return fmt.Sprintf("inserted: %d, replaced: %d, removed: %d", s.Inserted, s.Replaced, s.Removed)
}
