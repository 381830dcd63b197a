package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/restapi/common"
)

const TokenHeaderKey = "X-API-TOKEN"

// tokenHandlerMiddleware lets requests through only when they carry the fixed token.
// An empty token disables the check, the vendor does not send one by default.
func tokenHandlerMiddleware(token string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		headerToken := r.Header.Get(TokenHeaderKey)
		if subtle.ConstantTimeCompare([]byte(token), []byte(headerToken)) != 1 {
			common.SendUnauthorizedResponse(w, common.GetRequestID(ctx), logging.LoggerFromContext(ctx), "invalid token provided")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func TokenHandlerMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return tokenHandlerMiddleware(token, next)
	}
}
