package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/slugger"
)

// Baseline roles every fresh installation starts with.
var baselineRoles = []string{"Administrator", "Editor", "Author", "Subscriber"}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Role{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	created, err := seedRoles(ctx, roleRepo)
	if err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}
	log.Printf("Roles seeded: %d new, %d already present", created, len(baselineRoles)-created)

	if err := seedAdminUser(ctx, userRepo, cfg.BcryptCost); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedRoles creates any baseline role not already present. Existing roles are
// left untouched.
func seedRoles(ctx context.Context, repo repository.RoleRepository) (created int, err error) {
	for _, name := range baselineRoles {
		_, err := repo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		role := &model.Role{Name: name, Slug: slugger.Make(name)}
		if err := repo.Create(ctx, role); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// seedAdminUser creates one administrator from SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD. Skipped when the variables are unset or the email is
// already registered.
func seedAdminUser(ctx context.Context, repo repository.UserRepository, bcryptCost int) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     "Administrator",
		Gender:   model.GenderUndefined,
		IsVerify: true,
		Status:   true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin user %s created", email)
	return nil
}
