// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run binds the configured address, serves until the context is
// cancelled or SIGINT/SIGTERM arrives, then calls http.Server.Shutdown with
// the configured deadline. Ready and Addr let callers wait for the listener,
// which is handy with ":0" in tests.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown. HealthCheckHandler serves liveness and readiness probes.
package httpserver
