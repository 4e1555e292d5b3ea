package grammar

import "fmt"

// Error reports the position at which the input stopped conforming to the
// grammar. Offset is a byte offset; Line and Column are 1-based.
type Error struct {
	Rule   Rule
	Offset int
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: expected %s", e.Line, e.Column, e.Rule)
}
