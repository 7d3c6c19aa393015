package bootstrap

import (
	"log"

	"gorm.io/gorm"

	"github.com/lokavera/catalog-admin/internal/model"
	"github.com/lokavera/catalog-admin/pkg/hash"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.SubCategory{},
		&model.Brand{},
		&model.Supplier{},
		&model.Attribute{},
		&model.Variant{},
		&model.Product{},
	)
}

// SeedAdminUser creates a development admin account when none exists.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@localhost").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("admin user already exists, skipping seed")
		return nil
	}

	digest, err := hash.Password("admin123")
	if err != nil {
		return err
	}

	admin := model.User{
		Email:     "admin@localhost",
		Password:  digest,
		FirstName: "Admin",
		LastName:  "User",
		IsActive:  true,
		Roles:     model.RoleList{model.RoleAdmin},
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("admin user seeded (admin@localhost / admin123)")
	return nil
}
