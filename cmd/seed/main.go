// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev user (dev@example.com) already exists.
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"log-platform/usersvc/internal/config"
	"log-platform/usersvc/internal/db"
	identityservice "log-platform/usersvc/internal/identity/service"
	"log-platform/usersvc/internal/security"
	sessionrepo "log-platform/usersvc/internal/session/repository"
	userrepo "log-platform/usersvc/internal/user/repository"
)

const (
	devUserEmail = "dev@example.com"
	devUserName  = "dev"
	devFullName  = "Dev User"
	devPassword  = "password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	key, err := security.KeyFromJWK(cfg.JWK)
	if err != nil {
		log.Fatalf("signing key: %v", err)
	}
	tokens := security.NewTokenProvider(key, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL(), cfg.RefreshTTL())
	svc := identityservice.NewAuthService(
		userrepo.NewPostgresRepository(conn),
		sessionrepo.NewPostgresRepository(conn),
		tokens,
		nil,
		nil,
	)

	// Clients hash the password once before it goes on the wire; seed the
	// same shape so dev logins work against this account.
	wireHash := sha256.Sum256([]byte(devPassword))
	err = svc.SignUp(context.Background(), identityservice.SignUpParams{
		UserName:       devUserName,
		FullName:       devFullName,
		Email:          devUserEmail,
		HashedPassword: hex.EncodeToString(wireHash[:]),
	})
	if errors.Is(err, identityservice.ErrEmailTaken) {
		log.Printf("dev user %s already exists; nothing to do", devUserEmail)
		return
	}
	if err != nil {
		log.Fatalf("seed dev user: %v", err)
	}

	fmt.Printf("seeded dev user %s (password %q)\n", devUserEmail, devPassword)
}
