package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/saurav9895/giftopia-api/auth"
	"github.com/saurav9895/giftopia-api/models"
	"github.com/saurav9895/giftopia-api/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting Giftopia API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.GuestUser{},
		&models.Product{},
		&models.ProductImage{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.GuestCart{},
		&models.GuestCartItem{},
		&models.WishlistItem{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.StoreSettings{},
		&models.PromoCode{},
		&models.FeaturedProduct{},
		&models.FeaturedCategory{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// Allow large image uploads (64 MB)
	r.MaxMultipartMemory = 64 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	uploadsDir := "uploads"
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, db)

	// Nightly at 2 AM: archive product/category images (keep the last
	// 4 archives) and sweep expired guest sessions
	go runNightlyMaintenance(db, uploadsDir, "backup/uploads", 4, 2)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// runNightlyMaintenance archives the uploaded store images and sweeps
// expired guest sessions once a day at the given hour.
func runNightlyMaintenance(db *gorm.DB, uploadsDir, archiveDir string, keep, hour int) {
	for {
		wait := untilNextRun(time.Now(), hour)
		log.Printf("⏳ Next maintenance run in %s", wait.Round(time.Second))
		time.Sleep(wait)

		dest := filepath.Join(archiveDir, time.Now().Format("2006-01-02"))
		if err := archiveUploads(uploadsDir, dest); err != nil {
			log.Printf("❌ Failed to archive uploads: %v", err)
		} else {
			log.Printf("✅ Uploads archived to %s", dest)
		}
		pruneArchives(archiveDir, keep)

		if removed, err := auth.PurgeExpiredGuests(db, time.Now()); err != nil {
			log.Printf("❌ Failed to sweep expired guests: %v", err)
		} else if removed > 0 {
			log.Printf("🗑️ Removed %d expired guest sessions", removed)
		}
	}
}

// untilNextRun computes the wait until the next occurrence of hour
// o'clock local time.
func untilNextRun(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}

// archiveUploads mirrors the uploads tree (product and category images)
// into dest. A missing source means nothing was uploaded yet.
func archiveUploads(src, dest string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
}

// pruneArchives keeps only the newest keep archive folders; the
// date-stamped names sort lexicographically.
func pruneArchives(archiveDir string, keep int) {
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for len(names) > keep {
		old := filepath.Join(archiveDir, names[0])
		names = names[1:]
		if err := os.RemoveAll(old); err != nil {
			log.Printf("❌ Failed to remove old archive %s: %v", old, err)
		} else {
			log.Printf("🗑️ Removed old archive %s", old)
		}
	}
}
