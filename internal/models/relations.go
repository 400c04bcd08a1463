package models

// ProviderProduct links a provider to a product it supplies. Identity is the
// pair of foreign keys.
type ProviderProduct struct {
	ProductID  uint `gorm:"primaryKey;autoIncrement:false" json:"productId"`
	ProviderID uint `gorm:"primaryKey;autoIncrement:false" json:"providerId"`
}

func (ProviderProduct) TableName() string { return "provider_product" }

// ProductCategory links a product to a category. Identity is the pair of
// foreign keys.
type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey;autoIncrement:false" json:"productId"`
	CategoryID uint `gorm:"primaryKey;autoIncrement:false" json:"categoryId"`
}

func (ProductCategory) TableName() string { return "product_category" }

// AllModels returns every model in foreign-key order: parents before the
// tables that reference them. Used by AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&Provider{},
		&Product{},
		&Category{},
		&Client{},
		&Order{},
		&ProviderProduct{},
		&ProductCategory{},
		&OrderLine{},
	}
}
