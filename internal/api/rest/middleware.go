package rest

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/reelcrew/reelcrew/internal/platform/requestctx"
)

// userIDHeader carries the caller identity. Authentication happens upstream;
// this layer only propagates the asserted identity into request context.
const userIDHeader = "X-User-ID"

var tracer = otel.Tracer("github.com/reelcrew/reelcrew/internal/api/rest")

// withRequestContext stores the caller identity in context and wraps the
// request in a server span.
func withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := strings.TrimSpace(r.Header.Get(userIDHeader))
		if userID != "" {
			ctx = requestctx.WithUserID(ctx, userID)
		}

		ctx, span := tracer.Start(
			ctx,
			r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callerID returns the authenticated user from request context.
func callerID(r *http.Request) string {
	return requestctx.UserIDFromContext(r.Context())
}
