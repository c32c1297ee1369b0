package config

import (
	"log"

	"evercare-dental/internal/adapters/persistence/models"
	"evercare-dental/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser provisions the initial admin account from ADMIN_EMAIL /
// ADMIN_PASSWORD. Registration never grants the admin role, so without
// this (or a later promote) there is no way into the dashboard.
func (s *Seeder) seedAdminUser() error {
	if s.cfg.Admin.SeedEmail == "" || s.cfg.Admin.SeedPassword == "" {
		log.Println("ℹ️ ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	// Check if an admin already exists
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash(s.cfg.Admin.SeedPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     s.cfg.Admin.SeedName,
		Email:    s.cfg.Admin.SeedEmail,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user seeded: %s", admin.Email)
	return nil
}

// SeedData seeds initial data (called from main)
func SeedData(db *gorm.DB, cfg *Config) error {
	return NewSeeder(db, cfg).Run()
}
