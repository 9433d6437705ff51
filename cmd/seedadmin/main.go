// Command seedadmin creates the first admin account. Callback notifications
// and client messages to the admin team fail without at least one active
// admin, so run this once after migrating a fresh database.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"agencyhub/internal/config"
	"agencyhub/internal/domain"
	"agencyhub/internal/repository/postgres"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password (min 8 characters)")
	name := flag.String("name", "Administrator", "admin full name")
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		log.Fatal("usage: seedadmin -email admin@example.com -password <min 8 chars> [-name \"Full Name\"]")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now()
	admin := &domain.User{
		ID:           uuid.New(),
		Email:        *email,
		PasswordHash: string(hash),
		FullName:     *name,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := postgres.NewUserRepo(db).Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin account %s created (id %s)", admin.Email, admin.ID)
}
