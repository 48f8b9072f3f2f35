package main

import (
	"fmt"
	"math/rand"

	adminapp "github.com/sngm3741/matjip-map/api/internal/admin/application"
	"github.com/sngm3741/matjip-map/api/internal/geo"
	publicapp "github.com/sngm3741/matjip-map/api/internal/public/application"
)

type placeTemplate struct {
	name     string
	category string
}

var placeTemplates = []placeTemplate{
	{"을지로 골뱅이", "한식>술집"},
	{"광장시장 빈대떡", "한식>전"},
	{"명동 칼국수", "한식>면"},
	{"종로 곰탕", "한식>국밥"},
	{"서촌 파스타", "양식>파스타"},
	{"익선동 카페", "카페>디저트"},
	{"북창동 순두부", "한식>찌개"},
	{"충무로 족발", "한식>족발"},
	{"시청 평양냉면", "한식>냉면"},
	{"남대문 갈치조림", "한식>생선"},
	{"인사동 비빔밥", "한식>밥"},
	{"삼청동 수제비", "한식>면"},
	{"을지로 노가리", "한식>술집"},
	{"무교동 낙지", "한식>해물"},
	{"정동 돈까스", "일식>돈까스"},
}

var districts = []string{"중구", "종로구", "서대문구", "용산구"}

var reviewComments = []string{
	"국물이 진하고 양도 넉넉해서 또 올 것 같아요.",
	"웨이팅이 있었지만 기다릴 만한 맛이었습니다.",
	"직원분들이 친절하고 가게가 깔끔해요.",
	"가격 대비 만족스러웠어요. 점심으로 추천합니다.",
	"기대보다는 평범했지만 재방문 의사는 있어요.",
	"반찬이 맛있고 분위기가 좋아서 모임 장소로 좋아요.",
}

// generatePlaces は DefaultCenter 周辺 (約 ±1.5km) に場所を散らして作成コマンドを返す。
func generatePlaces(rng *rand.Rand, count int) []adminapp.CreatePlaceCommand {
	cmds := make([]adminapp.CreatePlaceCommand, 0, count)
	for i, tmpl := range pickUnique(rng, placeTemplates, count) {
		cmds = append(cmds, adminapp.CreatePlaceCommand{
			Name:      tmpl.name,
			Address:   fmt.Sprintf("서울 %s %d길 %d", districts[rng.Intn(len(districts))], 1+rng.Intn(30), i+1),
			Category:  tmpl.category,
			Latitude:  round(geo.DefaultCenter.Lat+(rng.Float64()-0.5)*0.027, 6),
			Longitude: round(geo.DefaultCenter.Lng+(rng.Float64()-0.5)*0.034, 6),
		})
	}
	return cmds
}

func generateReview(rng *rand.Rand) publicapp.CreateReviewCommand {
	return publicapp.CreateReviewCommand{
		AuthorName: fmt.Sprintf("user%03d@ex.kr", rng.Intn(1000)),
		Rating:     weightedRating(rng),
		Content:    reviewComments[rng.Intn(len(reviewComments))],
		Password:   "seed1234",
	}
}

// weightedRating は 4〜5 に寄せた評価を返す。
func weightedRating(rng *rand.Rand) int {
	weights := []int{1, 2, 4, 8, 6}
	total := 0
	for _, w := range weights {
		total += w
	}
	n := rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return i + 1
		}
		n -= w
	}
	return 5
}

func distribute(total, buckets, minPerBucket, maxPerBucket int, rng *rand.Rand) []int {
	if buckets <= 0 {
		return nil
	}
	if maxPerBucket < minPerBucket {
		maxPerBucket = minPerBucket
	}
	counts := make([]int, buckets)
	for i := range counts {
		counts[i] = minPerBucket
	}
	remaining := total - minPerBucket*buckets
	if capacity := (maxPerBucket - minPerBucket) * buckets; remaining > capacity {
		remaining = capacity
	}
	for remaining > 0 {
		i := rng.Intn(buckets)
		if counts[i] >= maxPerBucket {
			continue
		}
		counts[i]++
		remaining--
	}
	return counts
}

func pickUnique[T any](rng *rand.Rand, source []T, count int) []T {
	if count >= len(source) {
		cp := make([]T, len(source))
		copy(cp, source)
		return cp
	}
	result := make([]T, 0, count)
	for _, idx := range rng.Perm(len(source))[:count] {
		result = append(result, source[idx])
	}
	return result
}

func round(val float64, precision int) float64 {
	pow := 1.0
	for i := 0; i < precision; i++ {
		pow *= 10
	}
	return float64(int64(val*pow+0.5)) / pow
}
