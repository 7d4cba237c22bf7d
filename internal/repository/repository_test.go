package repository

import (
	"testing"

	"github.com/InnovativeSphere/jewel-dashboard/internal/auth"
	"github.com/InnovativeSphere/jewel-dashboard/internal/config"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestRepo creates a repository backed by an in-memory SQLite database.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Project{},
		&model.Donation{},
		&model.Person{},
		&model.ProjectImage{},
		&model.ProjectPerson{},
		&model.Partner{},
		&model.User{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	jwtService := auth.NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)

	return NewRepository(db, util.NewLogger("development"), jwtService)
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func floatPtr(f float64) *float64 { return &f }
