package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"payfast-store-demo/internal/model"
)

type ProductRepository interface {
	Seed(ctx context.Context) error
	FindAll(ctx context.Context) ([]*model.Product, error)
	FindByIDOrHandle(ctx context.Context, key string) (*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{db: db}
}

// SampleProducts is the bootstrap catalog, also served directly when
// the store is unreachable.
var SampleProducts = []model.Product{
	{
		ID:          "1",
		Handle:      "digital-watch",
		Title:       "Nuke NG101 Digital Watch",
		Price:       295,
		Description: "Built for tough jobs. Water resistant digital watch with durable polymer construction.",
		Image:       "/images/g7.png",
		Specs:       model.ProductSpecs{WaterResistance: "30m", Material: "Polymer", Weight: "43g"},
	},
	{
		ID:          "2",
		Handle:      "nuke-cgsr001-digital-watch",
		Title:       "Nuke CGSR001 Digital Watch",
		Price:       395,
		Description: "Professional grade digital watch with enhanced durability and precision.",
		Image:       "/images/g6.png",
		Specs:       model.ProductSpecs{WaterResistance: "50m", Material: "Polymer", Weight: "47g"},
	},
	{
		ID:          "3",
		Handle:      "box-of-10x-nuke-ng101-digital-watches",
		Title:       "Box of 10x Nuke NG101 Digital Watches",
		Price:       249.99,
		Description: "Bulk order of 10 Nuke NG101 Digital Watches. Perfect for teams and organizations.",
		Image:       "/images/g7.png",
		Specs:       model.ProductSpecs{WaterResistance: "30m", Material: "Polymer", Weight: "43g"},
	},
	{
		ID:          "4",
		Handle:      "box-of-10x-nuke-cgsr001-digital-watches",
		Title:       "Box of 10x Nuke CGSR001 Digital Watches",
		Price:       299.99,
		Description: "Bulk order of 10 Nuke CGSR001 Digital Watches. Professional grade for teams.",
		Image:       "/images/g6.png",
		Specs:       model.ProductSpecs{WaterResistance: "50m", Material: "Polymer", Weight: "47g"},
	},
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := SampleProducts
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&products).Error
}

func (r *productRepoImpl) FindAll(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindByIDOrHandle(ctx context.Context, key string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ? OR handle = ?", key, key).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}
