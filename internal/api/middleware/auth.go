package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/boinvit/booking-service/internal/api/handlers"
)

type contextKey string

const (
	businessIDKey contextKey = "businessID"
	subjectKey    contextKey = "subject"

	msgMissingToken  = "authorization token is required"
	msgInvalidToken  = "invalid authorization token"
	msgWrongBusiness = "token does not grant access to this business"
)

// Claims is the JWT payload issued by the auth service. business_id is
// present only on dashboard tokens; client account tokens carry just sub.
type Claims struct {
	BusinessID string `json:"business_id,omitempty"`
	jwt.RegisteredClaims
}

// Auth validates the bearer token and stores its claims in the request
// context. Routes with a {businessId} path variable additionally require
// the token's business_id to match.
func Auth(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if pathBusinessID := mux.Vars(r)["businessId"]; pathBusinessID != "" &&
				claims.BusinessID != "" && claims.BusinessID != pathBusinessID {
				handlers.RespondForbidden(w, msgWrongBusiness)
				return
			}

			ctx := context.WithValue(r.Context(), businessIDKey, claims.BusinessID)
			ctx = context.WithValue(ctx, subjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BusinessIDFromContext returns the business_id claim, if any
func BusinessIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(businessIDKey).(string)
	return id
}

// SubjectFromContext returns the token subject, if any
func SubjectFromContext(ctx context.Context) string {
	sub, _ := ctx.Value(subjectKey).(string)
	return sub
}
