package postgres

import (
	"context"
	"embed"
	"fmt"
	"sort"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// EnsureSchema aplica as migrações embutidas, em ordem de nome de arquivo.
// O DDL é idempotente (CREATE TABLE IF NOT EXISTS), então rodar no boot é seguro.
func EnsureSchema(ctx context.Context, q Querier) error {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("ler migrações embutidas: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		sql, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("ler migração %s: %w", name, err)
		}
		if _, err := q.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("aplicar migração %s: %w", name, err)
		}
	}
	return nil
}
