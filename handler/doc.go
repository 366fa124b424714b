// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value decoded by the
// configured binder and returns a Response. Wrap turns it into an
// http.HandlerFunc, routing bind and render failures to an ErrorHandler:
//
//	type analyzeRequest struct {
//		Password string `json:"password"`
//	}
//
//	func analyze(ctx handler.Context, req analyzeRequest) handler.Response {
//		return handler.JSON(strength.Analyze(req.Password))
//	}
//
//	r.Post("/api/analyze", handler.Wrap(analyze, handler.WithBinder[analyzeRequest](binder.JSON())))
//
// # Responses
//
// JSON wraps values in the {data, meta, error} envelope. Errors map to it
// through HTTPError, ValidationError and validator.ValidationErrors. Templ
// renders templ components as HTML, or as DataStar element patches over SSE
// when the request comes from DataStar. SSE runs a streaming callback that
// can push several patches over one response, and Blob writes raw bytes
// such as PNG images.
//
// # Errors
//
// Handlers return Error(err) to hand a failure to the ErrorHandler.
// NewErrorHandler logs through slog with the request id and answers with a
// JSON envelope, or with a DataStar toast patch for DataStar requests.
package handler
