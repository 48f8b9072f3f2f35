package viewstate

import (
	"context"
	"errors"
	"time"

	"github.com/sngm3741/matjip-map/api/internal/geo"
)

// LocationTimeout bounds a single position request.
const LocationTimeout = 10 * time.Second

// GeolocationErrorKind classifies a failed position request.
type GeolocationErrorKind int

const (
	GeolocationUnknown GeolocationErrorKind = iota
	GeolocationUnsupported
	GeolocationPermissionDenied
	GeolocationPositionUnavailable
	GeolocationTimeout
)

// GeolocationError is returned by a Locator that could not produce a position.
type GeolocationError struct {
	Kind   GeolocationErrorKind
	Detail string
}

func (e *GeolocationError) Error() string {
	return LocationMessage(e)
}

// Locator yields the device position.
type Locator interface {
	CurrentPosition(ctx context.Context) (geo.Point, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (geo.Point, error)

func (f LocatorFunc) CurrentPosition(ctx context.Context) (geo.Point, error) {
	return f(ctx)
}

// LocationOutcome is the result of ResolveLocation. Message is empty on success.
type LocationOutcome struct {
	Center  geo.Point
	Message string
	Actions []HomeAction
}

// ResolveLocation は現在地を取得し、失敗時は DefaultCenter にフォールバックする。
// 返される Actions を順に Dispatch すればホーム画面の状態に反映される。
func ResolveLocation(ctx context.Context, locator Locator) LocationOutcome {
	ctx, cancel := context.WithTimeout(ctx, LocationTimeout)
	defer cancel()

	var (
		pos geo.Point
		err error
	)
	if locator == nil {
		err = &GeolocationError{Kind: GeolocationUnsupported}
	} else {
		pos, err = locator.CurrentPosition(ctx)
	}
	if err == nil && !validPoint(pos) {
		err = &GeolocationError{Kind: GeolocationPositionUnavailable}
	}
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		err = &GeolocationError{Kind: GeolocationTimeout}
	}

	if err != nil {
		permission := PermissionError
		var gerr *GeolocationError
		if errors.As(err, &gerr) && gerr.Kind == GeolocationPermissionDenied {
			permission = PermissionDenied
		}
		return LocationOutcome{
			Center:  geo.DefaultCenter,
			Message: LocationMessage(err),
			Actions: []HomeAction{
				SetLocationPermission{Permission: permission},
				SetCurrentLocation{Location: nil},
				SetMapCenter{Center: geo.DefaultCenter},
			},
		}
	}

	return LocationOutcome{
		Center: pos,
		Actions: []HomeAction{
			SetLocationPermission{Permission: PermissionGranted},
			SetCurrentLocation{Location: &pos},
			SetMapCenter{Center: pos},
		},
	}
}

// LocationMessage returns the user-facing message for a geolocation failure.
func LocationMessage(err error) string {
	var gerr *GeolocationError
	if !errors.As(err, &gerr) {
		return "위치 정보를 가져올 수 없습니다"
	}
	switch gerr.Kind {
	case GeolocationUnsupported:
		return "이 브라우저는 위치 정보를 지원하지 않습니다"
	case GeolocationPermissionDenied:
		return "위치 권한이 거부되었습니다"
	case GeolocationPositionUnavailable:
		return "위치 정보를 사용할 수 없습니다"
	case GeolocationTimeout:
		return "위치 정보 요청 시간이 초과되었습니다"
	default:
		detail := gerr.Detail
		if detail == "" {
			detail = "알 수 없는 오류"
		}
		return "위치 정보 오류: " + detail
	}
}

func validPoint(p geo.Point) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
