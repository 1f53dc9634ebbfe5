package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/stzheng716/sharebnb-backend/models"
	"github.com/stzheng716/sharebnb-backend/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "sharebnb")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase inserts a small demo data set on an empty users table. Only runs
// when SEED_DEMO_DATA=true.
func SeedDatabase() {
	if !strings.EqualFold(strings.TrimSpace(os.Getenv("SEED_DEMO_DATA")), "true") {
		return
	}

	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		log.Println("Demo data already seeded")
		return
	}

	hash, err := utils.HashPassword("password")
	if err != nil {
		log.Printf("warning: failed to hash demo password: %v", err)
		return
	}

	guest := models.User{
		Username:  "demo_guest",
		FirstName: "Gwen",
		LastName:  "Guest",
		Email:     "guest@sharebnb.demo",
		Password:  hash,
		IsHost:    false,
	}
	host := models.User{
		Username:  "demo_host",
		FirstName: "Harry",
		LastName:  "Host",
		Email:     "host@sharebnb.demo",
		Password:  hash,
		IsHost:    true,
	}
	if err := DB.Create(&[]models.User{guest, host}).Error; err != nil {
		log.Printf("warning: failed to seed demo users: %v", err)
		return
	}

	listing := models.Listing{
		Title:         "Sunny backyard with pool",
		Details:       "Large fenced backyard with a heated pool and a shaded patio.",
		Street:        "123 Market St",
		City:          "San Francisco",
		State:         "CA",
		Zip:           94103,
		Country:       "USA",
		PricePerNight: 120,
		ImageURL:      models.DefaultImageURL,
		Username:      host.Username,
	}
	if err := DB.Create(&listing).Error; err != nil {
		log.Printf("warning: failed to seed demo listing: %v", err)
		return
	}

	message := models.Message{
		FromUsername: guest.Username,
		PropertyID:   listing.ID,
		Body:         "Hi! Is the pool available on weekends?",
		SentAtDate:   time.Now().UTC(),
	}
	if err := DB.Create(&message).Error; err != nil {
		log.Printf("warning: failed to seed demo message: %v", err)
		return
	}

	log.Println("Demo data seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Message{},
		&models.File{},
		&models.GeocodeCache{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
