package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"notfound/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	preferencesTable = "preferences"
)

// Get returns the value stored under key. Inside a transaction the row is
// locked until the transaction ends so read-modify-write cycles serialize.
func (p *PgSQL) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, storage.ErrEmptyKey
	}

	ds := p.Builder.From(preferencesTable).
		Select("value").
		Where(goqu.I("key").Eq(key))
	if _, inTx := p.DB.(*sql.Tx); inTx {
		ds = ds.ForUpdate(exp.Wait)
	}

	var value string
	found, err := ds.ScanValContext(ctx, &value)
	if err != nil {
		return "", false, fmt.Errorf("could not get preference from pg: %w", err)
	}

	return value, found, nil
}

// Set upserts value under key.
func (p *PgSQL) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return storage.ErrEmptyKey
	}

	_, err := p.Builder.Insert(preferencesTable).
		Rows(goqu.Record{
			"key":        key,
			"value":      value,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"value":      goqu.L("EXCLUDED.value"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set preference in pg: %w", err)
	}

	return nil
}
