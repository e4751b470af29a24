package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/countdown/internal/util"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			util.LogError("get setting "+key, err)
		}
		return "", false
	}
	if !value.Valid {
		return "", false
	}
	return value.String, true
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, nullableString(value))
	return wrapSettingErr("set", key, err)
}
