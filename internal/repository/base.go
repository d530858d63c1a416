// Package repository implements the data access layer for the application.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"qenea/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// isUniqueViolation checks if a DB error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL unique violation SQLSTATE 23505
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// wrapTxError passes domain errors out of a transaction closure untouched
// and wraps everything else as internal.
func wrapTxError(err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return models.NewInternalError(err)
}

// pointsColumn builds the subquery that annotates rows of table with the sum
// of their vote values. kind is always one of our enum constants, never user
// input.
func pointsColumn(table string, kind models.VoteTargetKind) string {
	return fmt.Sprintf(
		"COALESCE((SELECT SUM(v.value) FROM votes v WHERE v.target_kind = '%s' AND v.target_id = %s.id), 0) AS points",
		kind, table)
}

// lockForUpdate applies row locking where the dialect supports it. SQLite
// serializes writes on its own and rejects FOR UPDATE syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
