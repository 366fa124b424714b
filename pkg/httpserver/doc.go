// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the configured address, serves until the context is cancelled or
// the process receives SIGINT/SIGTERM, then calls http.Server.Shutdown with a
// bounded timeout. Start and stop hooks observe the life cycle. Config carries
// the HTTP_* environment settings for use with pkg/config.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler back the /health/live and
// /health/ready probes.
package httpserver
