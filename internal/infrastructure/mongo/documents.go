package mongo

import "time"

// PlaceDocument は MongoDB 上での場所スキーマを Go 構造体として表現したもの。
type PlaceDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Address   string    `bson:"address"`
	Category  string    `bson:"category,omitempty"`
	Latitude  float64   `bson:"latitude"`
	Longitude float64   `bson:"longitude"`
	CreatedAt time.Time `bson:"createdAt"`
}

// ReviewDocument はレビュー 1 件分のスキーマ。passwordHash は API 応答に含めない。
type ReviewDocument struct {
	ID           string    `bson:"_id"`
	PlaceID      string    `bson:"placeId"`
	AuthorName   string    `bson:"authorName"`
	Rating       int       `bson:"rating"`
	Content      string    `bson:"content"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
}
