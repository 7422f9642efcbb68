// Package repository реализует хранилище данных на основе PostgreSQL
// для управления счетами, платежами за периоды и журналом уведомлений.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrBillNotFound возвращается при обращении к несуществующему счету.
var ErrBillNotFound = errors.New("bill not found")

// ErrAlertNotFound возвращается при обращении к несуществующей записи журнала.
var ErrAlertNotFound = errors.New("alert not found")

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы со счетами, платежами и журналом уведомлений.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'bills'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table bills missing or query error: %w", err)
	}
	return nil
}
