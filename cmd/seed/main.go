package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

func init() {
	_ = godotenv.Load()
}

// main creates a super admin account.
// Usage: go run ./cmd/seed
// Reads SEED_ADMIN_EMAIL, SEED_ADMIN_NAME and SEED_ADMIN_PASSWORD, prompting for any that are unset.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("DURABLE CMS - Super Admin Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg := config.Load()
	config.InitLogger(cfg.Logger, cfg.Server.AppEnv)
	if err := config.InitDB(cfg.Database, cfg.IsProduction()); err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer config.CloseDB()
	if err := models.AutoMigrate(config.CmsGorm); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Connected to database")

	in := bufio.NewReader(os.Stdin)
	email := valueOrPrompt(in, "SEED_ADMIN_EMAIL", "Email")
	name := valueOrPrompt(in, "SEED_ADMIN_NAME", "Name")
	password := valueOrPrompt(in, "SEED_ADMIN_PASSWORD", "Password")

	var existing models.Admin
	err := config.CmsGorm.Where("email = ?", strings.ToLower(email)).First(&existing).Error
	if err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}

	auth := services.NewAdminAuthService(config.CmsGorm, nil, services.NewAdminSessionService(config.CmsGorm))
	ctx, cancel := config.WithTimeout()
	defer cancel()
	admin, err := auth.CreateAdmin(ctx, email, name, password, models.AdminRoleSuperAdmin)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			log.Fatalf("Invalid input: %s", services.Message(err))
		}
		log.Fatalf("Failed to create super admin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Super Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Name:  %s\n", admin.Name)
	fmt.Printf("Role:  %s\n", admin.Role)
	fmt.Println()
	fmt.Println("Login at POST /api/v1/admin/login with email and password")
}

func valueOrPrompt(in *bufio.Reader, env, label string) string {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	fmt.Printf("%s: ", label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		log.Fatalf("Failed to read %s: %v", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line)
}
