package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"

	adminapp "github.com/sngm3741/matjip-map/api/internal/admin/application"
	admindomain "github.com/sngm3741/matjip-map/api/internal/admin/domain"
	"github.com/sngm3741/matjip-map/api/internal/interfaces/http/common"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

var placeMessages = common.Messages{
	"name.required":      "장소 이름이 필요합니다.",
	"address.required":   "주소가 필요합니다.",
	"latitude.required":  "위도가 필요합니다.",
	"longitude.required": "경도가 필요합니다.",
}

// valueObjectMessages は値オブジェクトのエラーを利用者向けメッセージに変換する。
var valueObjectMessages = []struct {
	err     error
	message string
}{
	{admindomain.ErrPlaceNameRequired, "장소 이름이 필요합니다."},
	{admindomain.ErrPlaceNameTooLong, "장소 이름은 최대 100자입니다."},
	{admindomain.ErrAddressRequired, "주소가 필요합니다."},
	{admindomain.ErrAddressTooLong, "주소는 최대 200자입니다."},
	{admindomain.ErrCategoryTooLong, "카테고리는 최대 50자입니다."},
	{admindomain.ErrLatitudeRange, "위도는 -90에서 90 사이여야 합니다."},
	{admindomain.ErrLongitudeRange, "경도는 -180에서 180 사이여야 합니다."},
}

func placeValidationMessage(err error) string {
	for _, m := range valueObjectMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return "장소 정보가 올바르지 않습니다."
}

func (h *Handler) placeSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		query := r.URL.Query()
		keyword := strings.TrimSpace(query.Get("keyword"))
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 20)

		places, err := h.placeService.List(ctx, adminapp.PlaceFilter{Keyword: keyword, Limit: limit})
		if err != nil {
			h.logger.Printf("admin place search failed: %v", err)
			common.WriteErrorCode(h.logger, w, http.StatusInternalServerError, domain.CodeFetchFailed, "장소 목록 조회에 실패했습니다.")
			return
		}

		items := make([]adminPlaceResponse, 0, len(places))
		for _, place := range places {
			items = append(items, toAdminPlaceResponse(place))
		}
		common.WriteData(h.logger, w, http.StatusOK, adminPlaceListResponse{Items: items})
	}
}

func (h *Handler) placeCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminPlaceCreateRequest
		if err := common.DecodeJSON(w, r, &req); err != nil {
			common.WriteError(h.logger, w, err)
			return
		}
		if err := common.Validate(req, placeMessages); err != nil {
			common.WriteError(h.logger, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		place, err := h.placeService.Create(ctx, adminapp.CreatePlaceCommand{
			Name:      req.Name,
			Address:   req.Address,
			Category:  req.Category,
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		})
		if err != nil {
			var verr *adminapp.ValidationError
			switch {
			case errors.As(err, &verr):
				common.WriteErrorCode(h.logger, w, http.StatusBadRequest, domain.CodeValidationFailed, placeValidationMessage(verr))
			case errors.Is(err, admindomain.ErrDuplicatePlace):
				common.WriteErrorCode(h.logger, w, http.StatusConflict, domain.CodeValidationFailed, "이미 등록된 장소입니다.")
			default:
				h.logger.Printf("admin place create failed: %v", err)
				common.WriteErrorCode(h.logger, w, http.StatusInternalServerError, domain.CodeInternal, "장소 등록에 실패했습니다.")
			}
			return
		}

		if admin, ok := common.AdminFromContext(r.Context()); ok {
			h.logger.Printf("place created id=%s by=%s", place.ID, admin.ID)
		}
		common.WriteData(h.logger, w, http.StatusCreated, adminPlaceCreateResponse{Place: toAdminPlaceResponse(*place), Created: true})
	}
}

func toAdminPlaceResponse(place admindomain.Place) adminPlaceResponse {
	return adminPlaceResponse{
		ID:        place.ID,
		Name:      place.Name.String(),
		Address:   place.Address.String(),
		Category:  place.Category.String(),
		Latitude:  place.Location.Lat,
		Longitude: place.Location.Lng,
		CreatedAt: place.CreatedAt,
	}
}
