package public

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/matjip-map/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

// placeIDParam returns the place id route parameter, or writes 400 when it is not a UUID.
func (h *Handler) placeIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	placeID := strings.TrimSpace(chi.URLParam(r, "id"))
	if !common.ValidateVar(placeID, "required,uuid") {
		common.WriteErrorCode(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "유효하지 않은 장소 ID입니다.")
		return "", false
	}
	return placeID, true
}

func (h *Handler) reviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placeID, ok := h.placeIDParam(w, r)
		if !ok {
			return
		}
		paging, err := parsePaging(r.URL.Query())
		if err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		page, err := h.reviewQueries.List(ctx, placeID, paging)
		if err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		items := make([]reviewResponse, 0, len(page.Reviews))
		for _, review := range page.Reviews {
			items = append(items, toReviewResponse(review))
		}
		common.WriteData(h.logger, w, http.StatusOK, reviewListResponse{
			Reviews: items,
			Total:   page.Total,
			HasMore: page.HasMore,
		})
	}
}

func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placeID, ok := h.placeIDParam(w, r)
		if !ok {
			return
		}

		var req createReviewRequest
		if err := common.DecodeJSON(w, r, &req); err != nil {
			common.WriteError(h.logger, w, err)
			return
		}
		req.AuthorName = strings.TrimSpace(req.AuthorName)
		if err := common.Validate(req, reviewMessages); err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		review, err := h.reviewCommands.Create(ctx, placeID, publicapp.CreateReviewCommand{
			AuthorName: req.AuthorName,
			Rating:     req.Rating,
			Content:    req.Content,
			Password:   req.Password,
		})
		if err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		common.WriteData(h.logger, w, http.StatusCreated, createReviewResponse{Review: createdReviewResponse{
			ID:         review.ID,
			AuthorName: review.AuthorName,
			Rating:     review.Rating,
			Content:    review.Content,
			CreatedAt:  review.CreatedAt,
		}})
	}
}
