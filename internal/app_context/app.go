package appcontext

import (
	"github.com/InnovativeSphere/jewel-dashboard/internal/auth"
	"github.com/InnovativeSphere/jewel-dashboard/internal/config"
	"github.com/InnovativeSphere/jewel-dashboard/internal/repository"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// JWTService issues and verifies the signed tokens used for auth.
	JWTService auth.JWTInterface
}
