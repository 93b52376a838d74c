package mysql

import (
	"fmt"

	"goalkeeper/api/biz/config"
	"goalkeeper/api/biz/model/storage"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Open builds the process-wide GORM handle. The handle is passed down to the
// repositories explicitly instead of living in package state.
func Open(conf config.MySQLConf) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&storage.UserRecord{}); err != nil {
		return nil, err
	}

	return db, nil
}
