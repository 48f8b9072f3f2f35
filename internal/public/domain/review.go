package domain

import "time"

// Review is a persisted place review. PasswordHash must never leave the service boundary.
type Review struct {
	ID           string
	PlaceID      string
	AuthorName   string
	Rating       int
	Content      string
	PasswordHash string
	CreatedAt    time.Time
}

// ReviewPage is one page of a place's reviews, newest first.
type ReviewPage struct {
	Reviews []Review
	Total   int
	HasMore bool
}

// ReviewInput is the review submission form. The HTTP layer and client-side form state
// validate the same struct tags against ReviewInputMessages.
type ReviewInput struct {
	AuthorName string `json:"authorName" validate:"required,email,max=20"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Content    string `json:"content" validate:"required,min=10,max=500"`
	Password   string `json:"password" validate:"required,min=4"`
}

// ReviewInputMessages maps "field.tag" to the localized validation message.
var ReviewInputMessages = map[string]string{
	"authorName.required": "작성자명을 입력해주세요.",
	"authorName.email":    "이메일 형식이 아닙니다.",
	"authorName.max":      "작성자명은 최대 20자입니다.",
	"rating.required":     "평점은 최소 1점입니다.",
	"rating.min":          "평점은 최소 1점입니다.",
	"rating.max":          "평점은 최대 5점입니다.",
	"content.required":    "리뷰 내용은 최소 10자입니다.",
	"content.min":         "리뷰 내용은 최소 10자입니다.",
	"content.max":         "리뷰 내용은 최대 500자입니다.",
	"password.required":   "비밀번호는 최소 4자입니다.",
	"password.min":        "비밀번호는 최소 4자입니다.",
}
