package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("record not found")

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likeClause is a case-insensitive substring match on column, to be used with
// likePattern.
func likeClause(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

// likePattern builds the pattern for likeClause. Wildcards in s match literally.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
