package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassificacaoDeErrosSQLSTATE(t *testing.T) {
	t.Run("23505 é violação de índice único", func(t *testing.T) {
		err := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_users_email"}
		if !isUniqueViolation(err) {
			t.Error("esperava detecção de unique_violation")
		}
	})

	t.Run("23505 embrulhado também é detectado", func(t *testing.T) {
		err := fmt.Errorf("insert falhou: %w", &pgconn.PgError{Code: pgUniqueViolation})
		if !isUniqueViolation(err) {
			t.Error("esperava detecção através do wrapping")
		}
	})

	t.Run("42P01 é tabela inexistente, não duplicata", func(t *testing.T) {
		err := &pgconn.PgError{Code: pgUndefinedTable}
		if !isUndefinedTable(err) {
			t.Error("esperava detecção de undefined_table")
		}
		if isUniqueViolation(err) {
			t.Error("undefined_table não pode ser tratado como duplicata")
		}
	})

	t.Run("outros erros não são classificados", func(t *testing.T) {
		for _, err := range []error{gorm.ErrRecordNotFound, errors.New("connection reset")} {
			if isUniqueViolation(err) || isUndefinedTable(err) {
				t.Errorf("erro %v não deveria ser classificado como SQLSTATE", err)
			}
		}
	})
}
