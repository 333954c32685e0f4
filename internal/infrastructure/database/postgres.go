package database

import (
	"fmt"
	"strings"

	"github.com/dealerhub/sales-api/internal/config"
	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/infrastructure/repository"
	"github.com/dealerhub/sales-api/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("connected to PostgreSQL", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},

		&entity.Customer{},
		&entity.Quotation{},
		&entity.QuotationItem{},
		&entity.Task{},

		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := ensureReferenceSequence(db); err != nil {
		return fmt.Errorf("failed to create reference sequence: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}

// ensureReferenceSequence creates the quotation reference sequence and moves
// it past the references already issued, which were numbered by row count
func ensureReferenceSequence(db *gorm.DB) error {
	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS " + repository.ReferenceSequence).Error; err != nil {
		return err
	}

	return db.Exec(`SELECT setval('` + repository.ReferenceSequence + `', c.n)
		FROM (SELECT COUNT(*) AS n FROM quotations) c, ` + repository.ReferenceSequence + ` s
		WHERE c.n > 0 AND c.n >= s.last_value + CASE WHEN s.is_called THEN 1 ELSE 0 END`).Error
}

// SeedDefaultData creates permissions, the admin and sales roles, and the
// bootstrap admin account when one is configured
func SeedDefaultData(db *gorm.DB, seed *config.SeedConfig, log *zap.Logger) error {
	names := []string{
		entity.PermissionManageCustomers,
		entity.PermissionManageQuotations,
		entity.PermissionManageTasks,
		entity.PermissionViewLeaderboard,
	}

	for _, name := range names {
		var existing entity.Permission
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.Permission{Name: name, GuardName: "web"}).Error; err != nil {
				log.Warn("failed to create permission", zap.String("permission", name), zap.Error(err))
			}
		}
	}

	var allPermissions []entity.Permission
	if err := db.Find(&allPermissions).Error; err != nil {
		return fmt.Errorf("load permissions: %w", err)
	}

	ensureRole(db, entity.RoleAdmin, allPermissions, log)
	ensureRole(db, entity.RoleSales, allPermissions, log)

	if seed == nil || seed.AdminEmail == "" || seed.AdminPassword == "" {
		return nil
	}

	var existingAdmin entity.User
	if err := db.Where("email = ?", seed.AdminEmail).First(&existingAdmin).Error; err == nil {
		log.Info("admin user already exists", zap.String("email", seed.AdminEmail))
		return nil
	}

	hashedPassword, err := utils.HashPassword(seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
		return fmt.Errorf("load admin role: %w", err)
	}

	firstName, lastName := splitName(seed.AdminName)
	admin := entity.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     seed.AdminEmail,
		Password:  hashedPassword,
		Roles:     []entity.Role{adminRole},
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	log.Info("admin user created", zap.String("email", seed.AdminEmail))
	return nil
}

func ensureRole(db *gorm.DB, name string, permissions []entity.Permission, log *zap.Logger) {
	var role entity.Role
	if err := db.Where("name = ?", name).First(&role).Error; err == nil {
		return
	}

	role = entity.Role{Name: name, GuardName: "web", Permissions: permissions}
	if err := db.Create(&role).Error; err != nil {
		log.Warn("failed to create role", zap.String("role", name), zap.Error(err))
	}
}

// splitName splits a Vietnamese full name into given name (last word) and family name
func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "Admin", ""
	}
	i := strings.LastIndex(full, " ")
	if i < 0 {
		return full, ""
	}
	return full[i+1:], full[:i]
}
