package repositories

import "database/sql"

// strOrEmpty unwraps a nullable TEXT column. Legacy rows carry NULLs where
// newer code writes empty strings.
func strOrEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// floatOrZero unwraps a nullable REAL column.
func floatOrZero(nf sql.NullFloat64) float64 {
	if nf.Valid {
		return nf.Float64
	}
	return 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
