package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnsureSchema creates the dedicated namespace, the messages table and its
// indexes. Every statement uses IF NOT EXISTS, so running it on each startup
// (or from several instances at once) is safe. Any failure rolls the whole
// transaction back and is fatal for the caller: the service must not serve
// traffic against an unverified schema.
func EnsureSchema(dbConn *gorm.DB, schemaName string, logger *zap.Logger) error {
	err := dbConn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName)).Error; err != nil {
			return fmt.Errorf("failed to create schema %s: %w", schemaName, err)
		}

		if err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS messages (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL,
				username TEXT NOT NULL,
				guild_id BIGINT NOT NULL,
				timestamp TIMESTAMP WITH TIME ZONE NOT NULL
			)
		`).Error; err != nil {
			return fmt.Errorf("failed to create messages table: %w", err)
		}

		indexes := []string{
			"CREATE INDEX IF NOT EXISTS idx_messages_user_id ON messages(user_id)",
			"CREATE INDEX IF NOT EXISTS idx_messages_timestamp ON messages(timestamp)",
			"CREATE INDEX IF NOT EXISTS idx_messages_guild_id ON messages(guild_id)",
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Database schema verified", zap.String("schema", schemaName))
	return nil
}
