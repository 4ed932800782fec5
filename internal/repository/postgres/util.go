package postgres

import "strings"

// joinClauses joins SET clauses for dynamically built partial updates.
func joinClauses(clauses []string) string {
	return strings.Join(clauses, ", ")
}
