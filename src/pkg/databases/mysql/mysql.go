package mysql

import (
	"fmt"
	"time"

	"bank-portal-service/src/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Database bundles the gorm handle used by the ledger write path with an
// sqlx handle over the same *sql.DB for the raw-SQL report queries.
type Database struct {
	Gorm *gorm.DB
	Sqlx *sqlx.DB
}

func InitConnection(v *viper.Viper, logger log.Log) (*Database, error) {
	username := v.GetString("database.username")
	password := v.GetString("database.password")
	host := v.GetString("database.host")
	port := v.GetInt("database.port")
	database := v.GetString("database.name")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		username, password, host, port, database)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("mysql-init", err.Error(), "open", dsn)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(v.GetInt("database.pool.idle"))
	sqlDB.SetMaxOpenConns(v.GetInt("database.pool.max"))
	sqlDB.SetConnMaxLifetime(time.Duration(v.GetInt("database.pool.lifetime")) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		logger.Error("mysql-init", err.Error(), "ping", "")
		return nil, err
	}

	return &Database{
		Gorm: db,
		Sqlx: sqlx.NewDb(sqlDB, "mysql"),
	}, nil
}
