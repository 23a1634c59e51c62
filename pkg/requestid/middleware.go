package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Header carries the request ID in both directions.
const Header = "X-Request-ID"

// validID accepts client IDs of 1 to 128 URL-safe characters.
var validID = validator.Chain(
	validator.Length(1, 128),
	validator.Matches(`^[a-zA-Z0-9_-]+$`, "invalid request id"),
)

// Middleware reuses a well-formed X-Request-ID from the client or generates a
// UUID, stores it in the request context and echoes it in the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if _, err := validator.Check(validID, requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}
