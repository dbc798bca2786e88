// Package migrations 内嵌的数据库迁移脚本（sql-migrate 格式）
package migrations

import (
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed *.sql
var FS embed.FS

// Source sql-migrate 迁移源
func Source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: FS,
		Root:       ".",
	}
}
