package database

import (
	"fmt"
	"log"

	"learnhub/config"
	"learnhub/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance used by the routine CRUD
// controllers. The progress core receives its handle explicitly.
var Database DbInstance

// ConnectDb establishes the database connection for the configured dialect,
// runs migrations and returns the handle.
func ConnectDb(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.DBDialect {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBName)
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		dialector = postgres.Open(dsn)
	}

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which enrollment relies on.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", cfg.DBDialect, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	Database = DbInstance{Db: db}
	return db
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Section{},
		&models.Unit{},
		&models.Chapter{},
		&models.Question{},
		&models.QuestionOption{},
		&models.Enrollment{},
		&models.UserProgress{},
		&models.ChapterCompletion{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
