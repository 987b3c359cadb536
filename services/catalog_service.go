package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) Products() ([]entity.Product, error) {
	return s.Repo.Products()
}

// Menu is the storefront view: available products only.
func (s *CatalogService) Menu() ([]entity.Product, error) {
	return s.Repo.AvailableProducts()
}

// SaveProduct creates or updates; new products get a uuid.
func (s *CatalogService) SaveProduct(p *entity.Product) error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return s.Repo.SaveProduct(p)
}

func (s *CatalogService) DeleteProduct(id string) error {
	return s.Repo.DeleteProduct(id)
}

func (s *CatalogService) Categories() ([]entity.Category, error) {
	return s.Repo.Categories()
}

func (s *CatalogService) CreateCategory(name string) (*entity.Category, error) {
	if name == "" {
		return nil, errors.New("category name is required")
	}
	cat := &entity.Category{ID: uuid.NewString(), Name: name}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) DeleteCategory(id string) error {
	return s.Repo.DeleteCategory(id)
}

func (s *CatalogService) DailySpecials() ([]entity.DailySpecial, error) {
	return s.Repo.DailySpecials()
}

func (s *CatalogService) UpsertDailySpecial(day int, productID string) error {
	if day < 0 || day > 6 {
		return errors.New("day must be between 0 (Sunday) and 6 (Saturday)")
	}
	return s.Repo.UpsertDailySpecial(&entity.DailySpecial{Day: day, ProductID: productID})
}

func (s *CatalogService) DeleteDailySpecial(day int) error {
	return s.Repo.DeleteDailySpecial(day)
}
