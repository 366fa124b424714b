package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context that can push DataStar events.
type StreamContext interface {
	Context
	SendComponent(c templ.Component, opts ...TemplOption) error
	SendMultiple(patches ...TemplPatch) error
	SendSignals(signals map[string]any) error
	Remove(selector string) error
}

// SSEHandler runs for the lifetime of one SSE response.
type SSEHandler func(stream StreamContext) error

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(comp templ.Component, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(comp, opts...)
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	for _, p := range patches {
		if err := c.sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

func (c *streamContext) Remove(selector string) error {
	return c.sse.PatchElements("", datastar.WithSelector(selector), datastar.WithMode(datastar.ElementPatchModeRemove))
}

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrBadRequest
	}
	sse := datastar.NewSSE(w, r)
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: NewContext(w, r), sse: sse})
}

// SSE opens a DataStar event stream and runs h on it. Non-DataStar requests
// fail with ErrBadRequest.
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}
