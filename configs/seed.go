package configs

import (
	"log"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the back-office account from env on first boot.
func SeedAdmin(email, password string) error {
	var count int64
	if err := db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	log.Println("seeding admin account:", email)
	return db.Create(&entity.Admin{Name: "Administrador", Email: email, Password: string(hashed)}).Error
}

// SeedDefaults ensures the singleton config rows exist (id = 1).
func SeedDefaults() error {
	var cfg entity.StoreConfig
	if err := db.FirstOrCreate(&cfg, entity.StoreConfig{ID: 1}).Error; err != nil {
		return err
	}
	var loyalty entity.LoyaltyConfig
	return db.FirstOrCreate(&loyalty, entity.LoyaltyConfig{ID: 1}).Error
}

// SeedMenu loads a starter menu when the catalog is empty.
func SeedMenu() error {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cats := []entity.Category{
		{ID: uuid.NewString(), Name: "Combos"},
		{ID: uuid.NewString(), Name: "Cafeteria"},
	}
	if err := db.Create(&cats).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Combo Café Completo",
			Description: "1 Café Expresso + 1 Pão de Queijo + 1 Suco de Laranja.",
			Price:       decimal.RequireFromString("16.90"),
			Category:    "Combos",
			Savings:     "Economize R$ 3,10",
			IsAvailable: true,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Café Expresso",
			Description: "Aquele café forte para despertar.",
			Price:       decimal.RequireFromString("5.50"),
			Category:    "Cafeteria",
			IsAvailable: true,
		},
	}
	return db.Create(&products).Error
}
