// Command createadmin provisions an admin account. The API never writes
// admins itself; this tool is the only writer.
//
//	createadmin -username admin -password 's3cret'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"

	"github.com/threadline/catalog-api/internal/core/domain"
	"github.com/threadline/catalog-api/internal/core/service"
	"github.com/threadline/catalog-api/internal/infrastructure/config"
	mongodb "github.com/threadline/catalog-api/internal/infrastructure/db/mongo"
)

func main() {
	username := flag.String("username", "", "admin username (stored lowercased)")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if err := run(*username, *password); err != nil {
		fmt.Fprintln(os.Stderr, "createadmin:", err)
		os.Exit(1)
	}
}

func run(username, password string) error {
	username = service.NormalizeUsername(username)
	if username == "" || password == "" {
		return errors.New("both -username and -password are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Only the Mongo settings are needed here; the full Config would
	// demand JWT_SECRET, which this tool has no use for.
	var cfg config.MongoConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return err
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.URI,
		Database: cfg.Database,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := mongodb.NewAdminRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	created, err := repo.Create(ctx, &domain.Admin{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			return fmt.Errorf("admin %q already exists", username)
		}
		return err
	}

	fmt.Printf("admin %q created (id %s)\n", created.Username, created.ID)
	return nil
}
