// Package mock provides in-process stand-ins used by the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory sqlite database migrated with the application models.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	order  []any
}

// NewDb opens the database once per process and migrates models, parents first.
func NewDb(models ...any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}
	if err := dbConn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		panic(err)
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: make(map[string]any, len(models)),
		order:  models,
	}
	for _, model := range models {
		table, err := newDbMock.tableName(model)
		if err != nil {
			panic(err)
		}
		newDbMock.models[table] = model
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

func (d *Db) tableName(model any) (string, error) {
	stmt := &gorm.Statement{DB: d.DbConn}
	if err := stmt.Parse(model); err != nil {
		return "", err
	}
	return stmt.Schema.Table, nil
}

// ClearDB deletes every row, children before parents.
func (d *Db) ClearDB() error {
	for i := len(d.order) - 1; i >= 0; i-- {
		model := d.order[i]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
