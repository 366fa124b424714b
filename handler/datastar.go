package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is sent by DataStar actions.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
)

const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether r was sent by a DataStar action.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// DataStar returns a binder that decodes DataStar signals into v. It fails
// with ErrBadRequest for non-DataStar requests.
func DataStar() Bind {
	return func(r *http.Request, v any) error {
		if !IsDataStar(r) {
			return ErrBadRequest
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return ValidationError{"signals": {err.Error()}}
		}
		return nil
	}
}
