package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"hotel-frontdesk/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDatabase opens the configured store (a local SQLite file by
// default, MySQL when DB_DRIVER=mysql), migrates the schema and seeds the
// default admin account.
func ConnectDatabase(cfg App) error {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)
	gormCfg := &gorm.Config{Logger: newLogger}

	var db *gorm.DB
	var err error
	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			return fmt.Errorf("DB_DRIVER=mysql requires MYSQL_DSN")
		}
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Customer{},
		&models.Reservation{},
		&models.Transaction{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	SeedDatabase()
	return nil
}

// SeedDatabase ensures a default admin exists so the login gate is usable on
// a fresh database.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return
	}
	admin := models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to create default admin: %v", err)
		return
	}
	log.Println("Default admin seeded")
}
