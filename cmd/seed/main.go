package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"marketingsite/internal/database"
	"marketingsite/internal/domain"
	"marketingsite/internal/pkg/slug"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "marketing.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Blog{},
		&domain.CaseStudy{},
		&domain.Image{},
		&domain.MSPService{},
		&domain.Info{},
		&domain.ContactSubmission{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM contact_submissions")
	db.Exec("DELETE FROM infos")
	db.Exec("DELETE FROM msp_services")
	db.Exec("DELETE FROM images")
	db.Exec("DELETE FROM case_studies")
	db.Exec("DELETE FROM blogs")
	db.Exec("DELETE FROM users")

	log.Println("Creating admin user...")
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	admin := domain.User{
		Email:        "admin@example.com",
		PasswordHash: string(adminHash),
		Name:         "Site Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Create admin failed:", err)
	}

	log.Println("Creating sample content...")
	blogs := []domain.Blog{
		{
			UserID:           admin.ID,
			Heading:          "Why Managed IT Beats Break-Fix",
			ShortDescription: "The hidden costs of waiting for things to break.",
			Content:          "Reactive support looks cheap until the first real outage...",
			Type:             "article",
		},
		{
			UserID:           admin.ID,
			Heading:          "Ransomware Readiness Checklist",
			ShortDescription: "Ten questions to ask before an incident, not after.",
			Content:          "Backups you have never restored from are not backups...",
			Type:             "guide",
		},
	}
	for i := range blogs {
		blogs[i].Slug = slug.Make(blogs[i].Heading)
		if err := db.Create(&blogs[i]).Error; err != nil {
			log.Fatal("Create blog failed:", err)
		}
	}

	study := domain.CaseStudy{
		Heading:          "Cutting Ticket Volume 40% for a Regional Clinic",
		ShortDescription: "How proactive patching changed the support curve.",
		Content:          "The clinic came to us averaging 120 tickets a month...",
	}
	if err := db.Create(&study).Error; err != nil {
		log.Fatal("Create case study failed:", err)
	}

	services := []domain.MSPService{
		{UserID: admin.ID, Name: "Managed Helpdesk", Content: "24/7 remote support with guaranteed response times."},
		{UserID: admin.ID, Name: "Backup & Recovery", Content: "Tested restores, offsite copies, quarterly drills."},
	}
	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			log.Fatal("Create service failed:", err)
		}
	}

	infos := []domain.Info{
		{UserID: admin.ID, Name: "Who We Are", Content: "An IT partner for small and mid-size businesses."},
		{UserID: admin.ID, Name: "How We Work", Content: "Fixed monthly pricing, no surprise invoices."},
	}
	for i := range infos {
		if err := db.Create(&infos[i]).Error; err != nil {
			log.Fatal("Create info failed:", err)
		}
	}

	log.Println("Seed complete.")
	log.Printf("Admin login: %s / %s", admin.Email, adminPassword)
}
