package repository

import (
	"errors"

	"github.com/rephone-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	ListAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Upsert(product *models.Product) error
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// ListAll 按排序权重获取全部商品
func (r *GormProductRepository) ListAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("sort_order asc, id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 获取单个商品
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Upsert 创建或更新商品（种子导入用）
func (r *GormProductRepository) Upsert(product *models.Product) error {
	if product == nil {
		return nil
	}
	var existing models.Product
	err := r.db.Where("id = ?", product.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(product).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Updates(product).Error
}
