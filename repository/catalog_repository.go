package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ----- products -----

func (r *CatalogRepository) Products() ([]entity.Product, error) {
	var rows []entity.Product
	err := r.DB.Order("name").Find(&rows).Error
	return rows, err
}

func (r *CatalogRepository) AvailableProducts() ([]entity.Product, error) {
	var rows []entity.Product
	err := r.DB.Where("is_available = ?", true).Order("name").Find(&rows).Error
	return rows, err
}

func (r *CatalogRepository) ProductByID(id string) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) ProductsByIDs(ids []string) ([]entity.Product, error) {
	var rows []entity.Product
	err := r.DB.Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *CatalogRepository) SaveProduct(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *CatalogRepository) DeleteProduct(id string) error {
	return r.DB.Delete(&entity.Product{}, "id = ?", id).Error
}

// ----- categories -----

func (r *CatalogRepository) Categories() ([]entity.Category, error) {
	var rows []entity.Category
	err := r.DB.Order("name").Find(&rows).Error
	return rows, err
}

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

// DeleteCategory does not touch products; dangling category references are
// tolerated.
func (r *CatalogRepository) DeleteCategory(id string) error {
	return r.DB.Delete(&entity.Category{}, "id = ?", id).Error
}

// ----- daily specials -----

func (r *CatalogRepository) DailySpecials() ([]entity.DailySpecial, error) {
	var rows []entity.DailySpecial
	err := r.DB.Order("day").Find(&rows).Error
	return rows, err
}

func (r *CatalogRepository) UpsertDailySpecial(sp *entity.DailySpecial) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}},
		UpdateAll: true,
	}).Create(sp).Error
}

func (r *CatalogRepository) DeleteDailySpecial(day int) error {
	return r.DB.Delete(&entity.DailySpecial{}, "day = ?", day).Error
}
