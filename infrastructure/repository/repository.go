// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/database/postgres"
)

var ErrNotFound = errors.New("registro não encontrado")

// ListFilter restringe e pagina as listagens das tabelas
type ListFilter struct {
	StationID string
	Since     time.Time // limite inferior inclusivo da coluna de data da tabela
	Limit     int
	Offset    int
}

// rowScanner é satisfeito por *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// applyFilter aplica os filtros comuns. dateColumn vazio ignora Since.
func applyFilter(builder squirrel.SelectBuilder, filter ListFilter, dateColumn string) squirrel.SelectBuilder {
	if filter.StationID != "" {
		builder = builder.Where(squirrel.Eq{"station_id": filter.StationID})
	}
	if dateColumn != "" && !filter.Since.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{dateColumn: filter.Since})
	}
	return builder
}

func paginate(builder squirrel.SelectBuilder, filter ListFilter) squirrel.SelectBuilder {
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}
	return builder
}

func toSQL(builder squirrel.Sqlizer) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}
	return query, args, nil
}

func nullableFloat(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// listRows executa a consulta paginada e a contagem total com os mesmos filtros
func listRows[T any](
	ctx context.Context,
	db postgres.Queryer,
	query squirrel.Sqlizer,
	count squirrel.Sqlizer,
	scan func(rowScanner) (T, error),
) ([]T, int, error) {
	countSQL, countArgs, err := toSQL(count)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar registros: %w", err)
	}

	listSQL, listArgs, err := toSQL(query)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao ler registro: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro ao percorrer registros: %w", err)
	}

	return items, total, nil
}
