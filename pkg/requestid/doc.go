// Package requestid tags HTTP requests with a correlation ID.
//
// Middleware reuses the client's X-Request-ID when it is 1 to 128 characters
// of letters, digits, '-' or '_', and generates a UUID otherwise. The ID is
// stored in the request context and echoed in the response header.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// FromContext reads the ID back and LoggerExtractor plugs it into
// logger.WithContextExtractors so every record logged with the request
// context carries request_id.
package requestid
