// Package viewstate models the home screen and review-write screens as pure state machines.
package viewstate

import "github.com/sngm3741/matjip-map/api/internal/geo"

// DefaultZoomLevel is the initial map zoom.
const DefaultZoomLevel = 13

// LocationPermission mirrors the browser geolocation permission state.
type LocationPermission string

const (
	PermissionGranted LocationPermission = "granted"
	PermissionDenied  LocationPermission = "denied"
	PermissionPrompt  LocationPermission = "prompt"
	PermissionError   LocationPermission = "error"
)

// HomeState is the home screen state.
type HomeState struct {
	CurrentLocation    *geo.Point
	MapCenter          geo.Point
	ZoomLevel          int
	MapLoading         bool
	LocationPermission LocationPermission
	SearchKeyword      string
	SearchModalOpen    bool
	Loading            bool
}

// InitialHomeState returns the state the home screen starts from.
func InitialHomeState() HomeState {
	return HomeState{
		MapCenter:          geo.DefaultCenter,
		ZoomLevel:          DefaultZoomLevel,
		LocationPermission: PermissionPrompt,
	}
}

// HomeAction is a home screen transition.
type HomeAction interface {
	homeAction()
}

type (
	SetMapCenter          struct{ Center geo.Point }
	SetZoomLevel          struct{ Level int }
	SetMapLoading         struct{ Loading bool }
	SetLocationPermission struct{ Permission LocationPermission }
	// SetCurrentLocation with a nil Location clears the known position.
	SetCurrentLocation struct{ Location *geo.Point }
	SetSearchKeyword   struct{ Keyword string }
	OpenSearchModal    struct{}
	CloseSearchModal   struct{}
	SetLoading         struct{ Loading bool }
	ResetHome          struct{}
)

func (SetMapCenter) homeAction()          {}
func (SetZoomLevel) homeAction()          {}
func (SetMapLoading) homeAction()         {}
func (SetLocationPermission) homeAction() {}
func (SetCurrentLocation) homeAction()    {}
func (SetSearchKeyword) homeAction()      {}
func (OpenSearchModal) homeAction()       {}
func (CloseSearchModal) homeAction()      {}
func (SetLoading) homeAction()            {}
func (ResetHome) homeAction()             {}

// ReduceHome applies action to state and returns the next state. Unknown actions leave state unchanged.
func ReduceHome(state HomeState, action HomeAction) HomeState {
	switch a := action.(type) {
	case SetMapCenter:
		state.MapCenter = a.Center
	case SetZoomLevel:
		state.ZoomLevel = a.Level
	case SetMapLoading:
		state.MapLoading = a.Loading
	case SetLocationPermission:
		state.LocationPermission = a.Permission
	case SetCurrentLocation:
		if a.Location == nil {
			state.CurrentLocation = nil
		} else {
			loc := *a.Location
			state.CurrentLocation = &loc
		}
	case SetSearchKeyword:
		state.SearchKeyword = a.Keyword
	case OpenSearchModal:
		state.SearchModalOpen = true
	case CloseSearchModal:
		state.SearchModalOpen = false
	case SetLoading:
		state.Loading = a.Loading
	case ResetHome:
		return InitialHomeState()
	}
	return state
}
