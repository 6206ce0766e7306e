package config

import (
	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/pkg/databases/mysql"
	"bank-portal-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewDatabase(viper *viper.Viper, log log.Log) *mysql.Database {
	db, err := mysql.InitConnection(viper, log)
	if err != nil {
		log.Error("database init", err.Error(), "config", "")
		panic(err)
	}

	return db
}

// Migrate keeps the schema current on startup when enabled; production
// deployments run migrations out of band and leave this off.
func Migrate(db *mysql.Database, viper *viper.Viper, log log.Log) {
	if !viper.GetBool("database.auto_migrate") {
		return
	}
	err := db.Gorm.AutoMigrate(
		&entity.Member{},
		&entity.Account{},
		&entity.Organisation{},
		&entity.TransactionLog{},
		&entity.Loan{},
		&entity.LoanPayment{},
		&entity.ReleasedMoneyLog{},
		&entity.AuditLog{},
		&entity.OrgWithdrawal{},
		&entity.Operator{},
	)
	if err != nil {
		log.Error("database migrate", err.Error(), "config", "")
		panic(err)
	}
}
