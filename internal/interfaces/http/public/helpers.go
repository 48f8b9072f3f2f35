package public

import (
	"net/url"

	"github.com/sngm3741/matjip-map/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

var reviewMessages = common.Messages(domain.ReviewInputMessages)

// parsePaging reads page/limit with defaults 1/10. Non-positive or malformed values are rejected.
func parsePaging(query url.Values) (publicapp.Paging, error) {
	page, ok := common.ParsePositiveInt(query.Get("page"), 1)
	if !ok && query.Get("page") != "" {
		return publicapp.Paging{}, domain.ValidationError("page 는 1 이상의 정수여야 합니다.")
	}
	limit, ok := common.ParsePositiveInt(query.Get("limit"), common.DefaultPageLimit)
	if (!ok && query.Get("limit") != "") || limit > common.MaxPageLimit {
		return publicapp.Paging{}, domain.ValidationError("limit 는 1 이상 100 이하의 정수여야 합니다.")
	}
	return publicapp.Paging{Page: page, Limit: limit}, nil
}

func toPlaceResponse(place domain.Place) placeResponse {
	resp := placeResponse{
		ID:        place.ID,
		Name:      place.Name,
		Address:   place.Address,
		Category:  place.Category,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
	}
	if !place.CreatedAt.IsZero() {
		createdAt := place.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

func toSearchPlaceResponse(place domain.SearchPlace) searchPlaceResponse {
	return searchPlaceResponse{
		placeResponse: toPlaceResponse(place.Place),
		Description:   place.Description,
		Telephone:     place.Telephone,
		Link:          place.Link,
		Source:        place.Source,
	}
}

func toReviewResponse(review domain.Review) reviewResponse {
	return reviewResponse{
		ID:         review.ID,
		PlaceID:    review.PlaceID,
		AuthorName: review.AuthorName,
		Rating:     review.Rating,
		Content:    review.Content,
		CreatedAt:  review.CreatedAt,
	}
}
