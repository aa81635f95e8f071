package repository

import (
	"database/sql"
	"time"
)

func getFlowStateQuery(key string, now time.Time) (string, []any) {
	return `SELECT value FROM flow_states WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)`, []any{key, now}
}

func setFlowStateQuery(key string, value []byte, expiresAt sql.NullTime) (string, []any) {
	return `INSERT INTO flow_states (key, value, expires_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET
	value = EXCLUDED.value,
	expires_at = EXCLUDED.expires_at`, []any{key, value, expiresAt}
}

func deleteFlowStateQuery(key string) (string, []any) {
	return `DELETE FROM flow_states WHERE key = $1`, []any{key}
}

func deleteExpiredFlowStatesQuery(now time.Time) (string, []any) {
	return `DELETE FROM flow_states WHERE expires_at IS NOT NULL AND expires_at <= $1`, []any{now}
}
