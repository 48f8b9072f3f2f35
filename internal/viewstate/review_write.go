package viewstate

import "github.com/sngm3741/matjip-map/api/internal/apiclient"

// ReviewWriteState is the review-write form state.
type ReviewWriteState struct {
	Form      ReviewForm
	FormValid bool
	FormDirty bool

	Errors    FieldErrors
	FormError string

	Submitting     bool
	SubmitSuccess  bool
	SubmitError    string
	SubmitComplete bool

	Place        *apiclient.PlaceDetail
	PlaceLoading bool
	PlaceError   string

	BackConfirm bool
}

// ReviewWriteAction is a review-write transition.
type ReviewWriteAction interface {
	reviewWriteAction()
}

type (
	SetAuthorName struct{ Value string }
	SetRating     struct{ Value int }
	SetContent    struct{ Value string }
	SetPassword   struct{ Value string }
	SetFormValid  struct{ Valid bool }
	SetFormDirty  struct{ Dirty bool }
	// SetFieldError with an empty Message clears the field's error.
	SetFieldError struct {
		Field   string
		Message string
	}
	SetFormError      struct{ Message string }
	SubmitStart       struct{}
	SubmitSuccess     struct{}
	SubmitFailure     struct{ Message string }
	SubmitComplete    struct{}
	ResetSubmitState  struct{}
	FetchPlaceStart   struct{}
	FetchPlaceSuccess struct{ Place apiclient.PlaceDetail }
	FetchPlaceFailure struct{ Message string }
	OpenBackConfirm   struct{}
	CloseBackConfirm  struct{}
	// ResetForm clears everything except the loaded place.
	ResetForm struct{}
)

func (SetAuthorName) reviewWriteAction()     {}
func (SetRating) reviewWriteAction()         {}
func (SetContent) reviewWriteAction()        {}
func (SetPassword) reviewWriteAction()       {}
func (SetFormValid) reviewWriteAction()      {}
func (SetFormDirty) reviewWriteAction()      {}
func (SetFieldError) reviewWriteAction()     {}
func (SetFormError) reviewWriteAction()      {}
func (SubmitStart) reviewWriteAction()       {}
func (SubmitSuccess) reviewWriteAction()     {}
func (SubmitFailure) reviewWriteAction()     {}
func (SubmitComplete) reviewWriteAction()    {}
func (ResetSubmitState) reviewWriteAction()  {}
func (FetchPlaceStart) reviewWriteAction()   {}
func (FetchPlaceSuccess) reviewWriteAction() {}
func (FetchPlaceFailure) reviewWriteAction() {}
func (OpenBackConfirm) reviewWriteAction()   {}
func (CloseBackConfirm) reviewWriteAction()  {}
func (ResetForm) reviewWriteAction()         {}

// ReduceReviewWrite applies action to state and returns the next state.
func ReduceReviewWrite(state ReviewWriteState, action ReviewWriteAction) ReviewWriteState {
	switch a := action.(type) {
	case SetAuthorName:
		state.Form.AuthorName = a.Value
		state.FormDirty = true
	case SetRating:
		state.Form.Rating = a.Value
		state.FormDirty = true
	case SetContent:
		state.Form.Content = a.Value
		state.FormDirty = true
	case SetPassword:
		state.Form.Password = a.Value
		state.FormDirty = true
	case SetFormValid:
		state.FormValid = a.Valid
	case SetFormDirty:
		state.FormDirty = a.Dirty
	case SetFieldError:
		state.Errors = state.Errors.with(a.Field, a.Message)
	case SetFormError:
		state.FormError = a.Message
	case SubmitStart:
		state.Submitting = true
		state.SubmitError = ""
		state.SubmitSuccess = false
	case SubmitSuccess:
		state.Submitting = false
		state.SubmitSuccess = true
		state.SubmitComplete = true
	case SubmitFailure:
		state.Submitting = false
		state.SubmitError = a.Message
	case SubmitComplete:
		state.SubmitComplete = true
	case ResetSubmitState:
		state.Submitting = false
		state.SubmitSuccess = false
		state.SubmitError = ""
		state.SubmitComplete = false
	case FetchPlaceStart:
		state.PlaceLoading = true
		state.PlaceError = ""
	case FetchPlaceSuccess:
		place := a.Place
		state.PlaceLoading = false
		state.Place = &place
	case FetchPlaceFailure:
		state.PlaceLoading = false
		state.PlaceError = a.Message
	case OpenBackConfirm:
		state.BackConfirm = true
	case CloseBackConfirm:
		state.BackConfirm = false
	case ResetForm:
		return ReviewWriteState{Place: state.Place}
	}
	return state
}

// ValidationActions validates the current form and returns the actions that record the result.
func ValidationActions(state ReviewWriteState) []ReviewWriteAction {
	errs := ValidateReviewForm(state.Form)
	actions := make([]ReviewWriteAction, 0, len(reviewFields)+1)
	for _, field := range reviewFields {
		actions = append(actions, SetFieldError{Field: field, Message: errs[field]})
	}
	return append(actions, SetFormValid{Valid: len(errs) == 0})
}
