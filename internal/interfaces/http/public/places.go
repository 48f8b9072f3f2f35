package public

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/matjip-map/api/internal/geo"
	"github.com/sngm3741/matjip-map/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

func (h *Handler) placeNearbyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		lat, latOK := common.ParseFloat(query.Get("lat"))
		lng, lngOK := common.ParseFloat(query.Get("lng"))
		if !latOK || !lngOK || !domain.ValidCoordinates(lat, lng) {
			common.WriteErrorCode(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "유효한 위도와 경도가 필요합니다.")
			return
		}
		radius := geo.DefaultRadius
		if raw := query.Get("radius"); strings.TrimSpace(raw) != "" {
			parsed, ok := common.ParseFloat(raw)
			if !ok || parsed <= 0 {
				common.WriteErrorCode(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "반경은 0보다 커야 합니다.")
				return
			}
			radius = parsed
		}

		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		places, err := h.placeQueries.Nearby(ctx, publicapp.NearbyQuery{Lat: lat, Lng: lng, Radius: radius})
		if err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		items := make([]placeResponse, 0, len(places))
		for _, place := range places {
			items = append(items, toPlaceResponse(place))
		}
		common.WriteData(h.logger, w, http.StatusOK, nearbyResponse{Places: items})
	}
}

func (h *Handler) placeSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		keyword := strings.TrimSpace(query.Get("q"))
		if keyword == "" {
			common.WriteErrorCode(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "검색어가 필요합니다.")
			return
		}
		paging, err := parsePaging(query)
		if err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		page, err := h.placeQueries.Search(ctx, publicapp.SearchQuery{Q: keyword, Paging: paging})
		if err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		items := make([]searchPlaceResponse, 0, len(page.Places))
		for _, place := range page.Places {
			items = append(items, toSearchPlaceResponse(place))
		}
		common.WriteData(h.logger, w, http.StatusOK, searchResponse{
			Places:  items,
			Total:   page.Total,
			HasMore: page.HasMore,
		})
	}
}

func (h *Handler) placeDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteErrorCode(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, "장소 ID가 필요합니다.")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		detail, err := h.placeQueries.Detail(ctx, id)
		if err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		common.WriteData(h.logger, w, http.StatusOK, placeDetailEnvelope{Place: placeDetailResponse{
			placeResponse: toPlaceResponse(detail.Place),
			AverageRating: detail.AverageRating,
			ReviewCount:   detail.ReviewCount,
		}})
	}
}
