package database

import (
	"fmt"

	"gdm-clinic/config"
	"gdm-clinic/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date and seeds the initial admin account
// when the users table is empty.
func Migrate(db *gorm.DB, adminCfg config.AdminConfig) error {
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Patient{},
		&entity.GlucoseReading{},
		&entity.Appointment{},
		&entity.AuditLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return seedAdmin(db, adminCfg)
}

func seedAdmin(db *gorm.DB, adminCfg config.AdminConfig) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &entity.User{
		Username: adminCfg.Username,
		Password: string(hashedPassword),
		Email:    adminCfg.Email,
		FullName: adminCfg.FullName,
		Role:     entity.RoleAdmin,
		IsActive: true,
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	logrus.Infof("Seeded initial admin account %q", adminCfg.Username)
	return nil
}
