package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/ideas26/leadflow-api/internal/entity"
	"github.com/ideas26/leadflow-api/internal/infra/database"
)

// Seeds (or resets) the dashboard admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. The API has no registration endpoint on purpose.
func main() {
	godotenv.Load()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := database.NewUserRepository(db)
	user := &entity.AdminUser{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := userRepo.Create(context.Background(), user); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	log.Printf("✅ admin user ready: %s", email)
}
