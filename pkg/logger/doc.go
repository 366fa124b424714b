// Package logger builds *slog.Logger values for passguard services.
//
// New is the single factory. It picks a text or JSON handler, applies a level,
// attaches static attributes and wraps the result with a handler that pulls
// request-scoped attributes (such as the request id) out of context.Context on
// every record.
//
// Attribute helpers in attr.go keep key names consistent across packages:
//
//	log.DebugContext(ctx, "chat reply composed",
//	    logger.Component("chatbot"),
//	    logger.Intent("analyze"),
//	    logger.Score(75),
//	)
//
// The helpers deliberately cover metadata only. Passwords and chat text must
// never be passed to a logger; there is no helper for them.
//
// # Environments
//
// WithEnvironment maps APP_ENV values to presets: "production" and "staging"
// log JSON at info level, anything else logs text at debug level.
//
// Error returns an empty attribute for a nil error so callers can write
//
//	log.Error("shutdown", logger.Error(err))
//
// without a nil check.
package logger
