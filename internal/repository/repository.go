package repository

import (
	"errors"

	"github.com/InnovativeSphere/jewel-dashboard/internal/auth"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNothingToUpdate is returned by the Update methods when the caller
// supplied no recognized fields. No write is issued in that case; endpoints
// map it to the same 404 as an unknown id.
var ErrNothingToUpdate = errors.New("nothing to update")

type baseRepository struct {
	db         *gorm.DB
	logger     *zap.SugaredLogger
	jwtService auth.JWTInterface
}

type Repository struct {
	// DB can be used for transactions: begin one and pass it as the tx
	// argument of any repository method.
	DB            *gorm.DB
	Project       *ProjectRepository
	Donation      *DonationRepository
	Person        *PersonRepository
	ProjectImage  *ProjectImageRepository
	ProjectPerson *ProjectPersonRepository
	Partner       *PartnerRepository
	User          *UserRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface) *baseRepository {
	return &baseRepository{db: db, logger: logger, jwtService: jwtService}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface) *Repository {
	br := newBaseRepository(db, logger, jwtService)

	return &Repository{
		DB:            db,
		Project:       &ProjectRepository{baseRepository: br},
		Donation:      &DonationRepository{baseRepository: br},
		Person:        &PersonRepository{baseRepository: br},
		ProjectImage:  &ProjectImageRepository{baseRepository: br},
		ProjectPerson: &ProjectPersonRepository{baseRepository: br},
		Partner:       &PartnerRepository{baseRepository: br},
		User:          &UserRepository{baseRepository: br},
	}
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
