package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures a DataStar element patch.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the patch applies to.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the patch merges into the target.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch creates a TemplPatch for TemplMulti and StreamContext.SendMultiple.
func Patch(c templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: c, Options: opts}
}

type templResponse struct {
	patches []TemplPatch
	status  int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders c as HTML, or as a DataStar element patch for DataStar
// requests.
func Templ(c templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(c, opts...)}}
}

// TemplWithStatus is like Templ with a status code for plain HTML responses.
// DataStar patches are always sent with 200.
func TemplWithStatus(status int, c templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(c, opts...)}, status: status}
}

// TemplMulti sends each patch as its own DataStar event, or concatenates the
// components for plain HTML requests.
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}
