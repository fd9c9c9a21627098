package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that writes one log line
// per RPC: procedure, caller, result code, and duration. Caller errors log
// at warn; only server-side failures log at error.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"user_id", GetUserID(ctx), // empty before auth
				"duration_ms", time.Since(start).Milliseconds(),
			}
			switch code := connect.CodeOf(err); {
			case err == nil:
				slog.Info("rpc completed", attrs...)
			case code == connect.CodeInternal || code == connect.CodeUnknown:
				slog.Error("rpc failed", append(attrs, "code", code, "error", err)...)
			default:
				slog.Warn("rpc rejected", append(attrs, "code", code, "error", err)...)
			}

			return resp, err
		}
	}
}
