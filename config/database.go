package config

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// 支持的数据库驱动
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// OpenDB 连接数据库并执行迁移
func OpenDB(cfg DatabaseConfig, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.Driver == DriverSQLite {
		// sqlite 单写者
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = Migrate(db, cfg.Driver, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("database connected and migrated", zap.String("driver", cfg.Driver))
	return db, nil
}

// Migration 迁移结构
type Migration struct {
	Name string
	SQL  map[string]string
}

// Migrate 依次执行尚未记录的迁移
func Migrate(db *sql.DB, driver string, logger *zap.Logger) error {
	if err := createMigrationsTable(db, driver); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, migration := range migrations {
		if err := runMigrationIfNotExists(db, driver, migration, logger); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", migration.Name, err)
		}
	}
	return nil
}

// createMigrationsTable 创建迁移表
func createMigrationsTable(db *sql.DB, driver string) error {
	createSQL := `
	CREATE TABLE IF NOT EXISTS migrations (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
	`
	if driver == DriverSQLite {
		createSQL = `
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
		`
	}
	_, err := db.Exec(createSQL)
	return err
}

var migrations = []Migration{
	{
		Name: "001_create_users_table",
		SQL: map[string]string{
			DriverMySQL: `
			CREATE TABLE IF NOT EXISTS users (
				id INT AUTO_INCREMENT PRIMARY KEY,
				username VARCHAR(255) NOT NULL UNIQUE,
				password VARCHAR(255) NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
			`,
			DriverSQLite: `
			CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL UNIQUE,
				password TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
			`,
		},
	},
	{
		Name: "002_create_soil_analyses_table",
		SQL: map[string]string{
			DriverMySQL: `
			CREATE TABLE IF NOT EXISTS soil_analyses (
				id VARCHAR(32) PRIMARY KEY,
				user_id INT NOT NULL,
				timestamp VARCHAR(19) NOT NULL,
				location VARCHAR(255),
				crop_type VARCHAR(255),
				soil_type VARCHAR(20),
				health_score DOUBLE NOT NULL,
				assessment_tier VARCHAR(20),
				result_json LONGTEXT NOT NULL,
				INDEX idx_user_timestamp (user_id, timestamp),
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)
			`,
			DriverSQLite: `
			CREATE TABLE IF NOT EXISTS soil_analyses (
				id TEXT PRIMARY KEY,
				user_id INTEGER NOT NULL,
				timestamp TEXT NOT NULL,
				location TEXT,
				crop_type TEXT,
				soil_type TEXT,
				health_score REAL NOT NULL,
				assessment_tier TEXT,
				result_json TEXT NOT NULL
			)
			`,
		},
	},
	{
		Name: "003_index_soil_analyses_user",
		SQL: map[string]string{
			DriverSQLite: `CREATE INDEX IF NOT EXISTS idx_user_timestamp ON soil_analyses (user_id, timestamp)`,
		},
	},
}

// runMigrationIfNotExists 如果迁移不存在则运行
func runMigrationIfNotExists(db *sql.DB, driver string, migration Migration, logger *zap.Logger) error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", migration.Name).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug("migration already executed, skipping", zap.String("name", migration.Name))
		return nil
	}

	// 某些迁移只针对特定驱动，其余驱动只登记
	if stmt, ok := migration.SQL[driver]; ok {
		logger.Info("running migration", zap.String("name", migration.Name))
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	_, err = db.Exec("INSERT INTO migrations (name) VALUES (?)", migration.Name)
	return err
}
