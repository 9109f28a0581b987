package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/study-factory/attend-backend-go/internal/domain/auth"
	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/handler/http/response"
)

// Session is the caller identity carried by a verified access token.
type Session struct {
	UserID string
	Email  string
	Name   string
	Branch string
	Role   user.Role
}

func (s Session) IsStaff() bool {
	return s.Role == user.RoleStaff || s.Role == user.RoleAdmin
}

// SessionFromRequest reads the verified token claims. It must only be called
// below AuthRequired, which guarantees the claims are present and typed.
func SessionFromRequest(r *http.Request) (Session, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Session{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Session{}, auth.ErrInvalidToken
	}

	session := Session{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	if branch, ok := claims["branch"].(string); ok {
		session.Branch = branch
	}
	if role, ok := claims["role"].(string); ok {
		session.Role = user.Role(role)
	}
	return session, nil
}

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
