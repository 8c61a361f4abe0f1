package movie

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/models"
	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/pagination"
	"gorm.io/gorm"
)

const storeTimeout = 5 * time.Second

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns one page of the owner's collection, newest first.
// search matches title or director; typeFilter narrows to one entry type.
func (s *Service) List(ctx context.Context, userID uint, q pagination.Query, search, typeFilter string) ([]models.MovieModel, pagination.Meta, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	query := s.db.WithContext(ctx).
		Model(&models.MovieModel{}).
		Where("user_id = ?", userID)

	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR director LIKE ?", like, like)
	}
	if typeFilter = strings.TrimSpace(typeFilter); typeFilter != "" {
		query = query.Where("type = ?", typeFilter)
	}
	query = query.Order("created_at DESC, id DESC")

	var items []models.MovieModel
	meta, err := pagination.Paginate(query, q, &items)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return items, meta, nil
}

func (s *Service) Create(ctx context.Context, userID uint, dto *MovieDTO) (*models.MovieModel, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	m := models.MovieModel{
		UserID:    userID,
		Title:     strings.TrimSpace(dto.Title),
		Type:      dto.Type,
		Director:  strings.TrimSpace(dto.Director),
		Budget:    dto.Budget,
		Location:  dto.Location,
		Duration:  dto.Duration,
		YearTime:  dto.YearTime,
		PosterURL: dto.PosterURL,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Update rewrites an entry the owner holds; entries of other users are
// invisible here, so a foreign id reads as not found.
func (s *Service) Update(ctx context.Context, userID, id uint, dto *MovieDTO) (*models.MovieModel, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var m models.MovieModel
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	m.Title = strings.TrimSpace(dto.Title)
	m.Type = dto.Type
	m.Director = strings.TrimSpace(dto.Director)
	m.Budget = dto.Budget
	m.Location = dto.Location
	m.Duration = dto.Duration
	m.YearTime = dto.YearTime
	m.PosterURL = dto.PosterURL

	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.MovieModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
