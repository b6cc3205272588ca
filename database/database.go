package database

import (
	"fmt"
	"log"

	config "github.com/sdas2004/job_portal/configs"
	"github.com/sdas2004/job_portal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.PendingUser{},
		&models.Token{},
		&models.TestCategory{},
		&models.Question{},
		&models.TestResult{},
		&models.Answer{},
		&models.JobAdvert{},
		&models.JobApplication{},
		&models.Certificate{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("Admin credentials not configured, skipping admin seed.")
		return
	}

	var count int64
	err := DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedCategories creates the default quiz categories if they are missing.
// Safe to run on every startup.
func SeedCategories() {
	defaults := []string{"Math", "Aptitude", "English", "Coding"}

	for _, name := range defaults {
		var category models.TestCategory
		err := DB.Where("name = ?", name).First(&category).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("🔥 Failed to check test category %s: %v", name, err)
		}
		if err := DB.Create(&models.TestCategory{Name: name}).Error; err != nil {
			log.Fatalf("🔥 Failed to seed test category %s: %v", name, err)
		}
	}

	log.Println("✅ Test categories seeded successfully")
}
