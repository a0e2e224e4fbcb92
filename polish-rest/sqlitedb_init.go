package main

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"polish-calc-go/model"
)

var DB *gorm.DB = nil

func migrate() error {
	return DB.AutoMigrate(&model.CalcEntry{})
}

func OpenDb(dsn string) (err error) {
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}
	err = migrate()
	return
}

func CloseDb() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
