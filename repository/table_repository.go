package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) All() ([]entity.TableSlot, error) {
	var rows []entity.TableSlot
	err := r.DB.Order("id").Find(&rows).Error
	return rows, err
}

// Get returns the persisted row for a slot; (nil, nil) when the slot has no
// row, i.e. it is free.
func (r *TableRepository) Get(id int) (*entity.TableSlot, error) {
	var row entity.TableSlot
	err := r.DB.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert writes the row with on-conflict-by-id semantics: concurrent writers
// targeting the same slot overwrite each other, last one wins.
func (r *TableRepository) Upsert(tx *gorm.DB, row *entity.TableSlot) error {
	if err := row.Validate(); err != nil {
		return err
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(row).Error
}

// Delete removes the row; deleting is the encoding for "slot freed".
func (r *TableRepository) Delete(tx *gorm.DB, id int) error {
	return tx.Delete(&entity.TableSlot{}, "id = ?", id).Error
}
