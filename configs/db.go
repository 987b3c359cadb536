package configs

import (
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Admin{},
		&entity.Category{}, &entity.Product{}, &entity.DailySpecial{},
		&entity.Coupon{},
		&entity.LoyaltyConfig{}, &entity.LoyaltyUser{},
		&entity.StoreConfig{},
		&entity.TableSlot{},
	)
}
