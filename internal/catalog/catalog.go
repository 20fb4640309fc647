package catalog

import (
	"errors"
	"sort"
	"strings"

	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/models"
	"github.com/rephone-next/internal/repository"
)

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("product not found")

// Catalog 静态商品目录
// 启动时从数据库整体加载一次，运行期只读，顺序稳定。
type Catalog struct {
	products []models.Product
	byID     map[string]*models.Product
}

// New 从商品列表构建目录
func New(products []models.Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]*models.Product, len(products)),
	}
	for i := range c.products {
		c.byID[c.products[i].ID] = &c.products[i]
	}
	return c
}

// Load 从仓库加载目录
func Load(repo repository.ProductRepository) (*Catalog, error) {
	products, err := repo.ListAll()
	if err != nil {
		return nil, err
	}
	return New(products), nil
}

// List 返回全部商品（目录顺序）
func (c *Catalog) List() []models.Product {
	result := make([]models.Product, len(c.products))
	copy(result, c.products)
	return result
}

// Len 返回商品总数
func (c *Catalog) Len() int {
	return len(c.products)
}

// FindByID 按 ID 查找商品
func (c *Catalog) FindByID(id string) (*models.Product, error) {
	product, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Related 返回同品牌或同分类的商品（不含自身）
func (c *Catalog) Related(id string, limit int) ([]models.Product, error) {
	source, err := c.FindByID(id)
	if err != nil {
		return nil, err
	}
	related := make([]models.Product, 0, limit)
	for _, p := range c.products {
		if p.ID == source.ID {
			continue
		}
		if !strings.EqualFold(p.Brand, source.Brand) && !strings.EqualFold(p.Category, source.Category) {
			continue
		}
		related = append(related, p)
		if limit > 0 && len(related) >= limit {
			break
		}
	}
	return related, nil
}

// SortProducts 稳定排序（并列项保持目录顺序）
func SortProducts(products []models.Product, sortBy string) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	switch sortBy {
	case constants.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PriceAmount.LessThan(sorted[j].PriceAmount.Decimal)
		})
	case constants.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PriceAmount.GreaterThan(sorted[j].PriceAmount.Decimal)
		})
	case constants.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	default:
		// featured 保持目录顺序
	}
	return sorted
}
