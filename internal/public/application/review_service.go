package application

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

type reviewQueryService struct {
	repo ReviewRepository
}

// NewReviewQueryService creates a review query service.
func NewReviewQueryService(repo ReviewRepository) ReviewQueryService {
	return &reviewQueryService{repo: repo}
}

func (s *reviewQueryService) List(ctx context.Context, placeID string, paging Paging) (*domain.ReviewPage, error) {
	total, err := s.repo.CountByPlace(ctx, placeID)
	if err != nil {
		return nil, fetchFailed(err)
	}
	reviews, err := s.repo.FindByPlace(ctx, placeID, paging)
	if err != nil {
		return nil, fetchFailed(err)
	}
	for i := range reviews {
		reviews[i].PasswordHash = ""
	}
	return &domain.ReviewPage{
		Reviews: reviews,
		Total:   total,
		HasMore: paging.HasMore(total),
	}, nil
}

func fetchFailed(err error) error {
	return domain.NewError(http.StatusInternalServerError, domain.CodeReviewFetchFailed, "리뷰 조회에 실패했습니다.", err)
}

type reviewCommandService struct {
	places   PlaceRepository
	reviews  ReviewRepository
	hasher   PasswordHasher
	notifier ReviewNotifier
	now      Clock
}

// ReviewCommandOption customizes NewReviewCommandService.
type ReviewCommandOption func(*reviewCommandService)

// WithNotifier registers a notifier that is told about every created review.
func WithNotifier(n ReviewNotifier) ReviewCommandOption {
	return func(s *reviewCommandService) { s.notifier = n }
}

// WithClock overrides the creation timestamp source.
func WithClock(c Clock) ReviewCommandOption {
	return func(s *reviewCommandService) { s.now = c }
}

// NewReviewCommandService creates a review command service.
func NewReviewCommandService(places PlaceRepository, reviews ReviewRepository, hasher PasswordHasher, opts ...ReviewCommandOption) ReviewCommandService {
	s := &reviewCommandService{
		places:  places,
		reviews: reviews,
		hasher:  hasher,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *reviewCommandService) Create(ctx context.Context, placeID string, cmd CreateReviewCommand) (*domain.Review, error) {
	place, err := s.places.FindByID(ctx, placeID)
	if err != nil || place == nil {
		return nil, domain.PlaceNotFound(err)
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, domain.NewError(http.StatusInternalServerError, domain.CodePasswordHashFailed, "비밀번호 처리 중 오류가 발생했습니다.", err)
	}

	review := &domain.Review{
		ID:           uuid.NewString(),
		PlaceID:      placeID,
		AuthorName:   cmd.AuthorName,
		Rating:       cmd.Rating,
		Content:      cmd.Content,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, domain.NewError(http.StatusInternalServerError, domain.CodeReviewCreateFailed, "리뷰 작성에 실패했습니다.", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyReview(ctx, place, review)
	}

	created := *review
	created.PasswordHash = ""
	return &created, nil
}
