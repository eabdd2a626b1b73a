package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"corpportal/internal/config"
)

type MethodsDB interface {
	CloseDB() error
	RunMigrations(migrationsDir string) error
	HealthCheck() error
	GetDB() *DB
}

type DB struct {
	*sqlx.DB
}

func ConnectDB(cfg *config.Config) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.DbHOST,
		cfg.DB.DbPORT,
		cfg.DB.DbUSER,
		cfg.DB.DbPASSWORD,
		cfg.DB.DbNAME,
		cfg.DB.DbSSLMODE,
	)

	log.Printf("Подключаемся к БД: host=%s, dbname=%s", cfg.DB.DbHOST, cfg.DB.DbNAME)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	portal := &DB{db}

	if err := portal.RunMigrations(cfg.DB.MigrationsDir); err != nil {
		log.Printf("Внимание: ошибка при применении миграций: %v", err)
	}

	if err := portal.HealthCheck(); err != nil {
		return nil, fmt.Errorf("проверка БД не пройдена: %w", err)
	}

	log.Println("Успешное подключение к PostgreSQL")
	return portal, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations применяет все *.sql из каталога в лексикографическом
// порядке, файлы нумеруются префиксом 001_, 002_ и так далее
func (db *DB) RunMigrations(migrationsDir string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("ошибка при поиске файлов миграций: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("файлы миграций не найдены в каталоге: %s", migrationsDir)
	}

	sort.Strings(files)

	for _, file := range files {
		migrationSQL, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("ошибка при чтении файла миграций %s: %w", file, err)
		}

		log.Printf("Применяем миграции из файла: %s", file)

		if _, err := db.Exec(string(migrationSQL)); err != nil {
			return fmt.Errorf("ошибка при выполнении миграций %s: %w", file, err)
		}
	}

	log.Println("Миграции успешно применены")
	return nil
}

func (db *DB) HealthCheck() error {
	if db == nil {
		return fmt.Errorf("подключение к БД не инициализировано")
	}

	return db.Ping()
}

func (db *DB) GetDB() *DB {
	return db
}
