package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/models"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/hash"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/token"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// storeTimeout bounds every store call so a stuck connection surfaces
// as a server error instead of hanging the request.
const storeTimeout = 5 * time.Second

type Service struct {
	db     *gorm.DB
	issuer *token.Issuer
}

func NewService(db *gorm.DB, issuer *token.Issuer) *Service {
	return &Service{db: db, issuer: issuer}
}

// Signup creates an account and issues a session credential for it.
// The insert is atomic: a racing signup with the same email loses on
// the unique index and gets ErrEmailTaken, there is no pre-check read.
func (s *Service) Signup(ctx context.Context, dto *SignupDTO) (string, *models.UserModel, error) {
	hashed, err := hash.Make(dto.Password)
	if err != nil {
		return "", nil, err
	}

	u := models.UserModel{
		Email:    NormalizeEmail(dto.Email),
		Password: hashed,
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if isDuplicateKeyError(err) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	tok, err := s.issuer.Issue(u.ID, dto.Remember)
	if err != nil {
		return "", nil, err
	}
	return tok, &u, nil
}

// Login verifies credentials and issues a session credential. Unknown
// email and wrong password both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, dto *LoginDTO) (string, *models.UserModel, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var u models.UserModel
	err := s.db.WithContext(ctx).
		Where("email = ?", NormalizeEmail(dto.Email)).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !hash.Verify(dto.Password, u.Password) {
		return "", nil, ErrInvalidCredentials
	}

	tok, err := s.issuer.Issue(u.ID, dto.Remember)
	if err != nil {
		return "", nil, err
	}
	return tok, &u, nil
}

// GetUser loads the account a validated session refers to.
func (s *Service) GetUser(ctx context.Context, userID uint) (*models.UserModel, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var u models.UserModel
	if err := s.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// SQLite (tests) reports unique violations by message only.
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
