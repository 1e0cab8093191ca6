package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/helpers"
	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/Alok-CS-2022/import-export-site/app/repositories"
	"github.com/Alok-CS-2022/import-export-site/app/services"
	"github.com/unrolled/render"
)

// AuthMiddleware resolves a bearer token to a user and puts it on the
// request context. With required=false an absent token passes through
// anonymously, but a token that is present and invalid still fails the
// request: no silent downgrade to anonymous.
func AuthMiddleware(tokens *services.TokenService, userRepo repositories.UserRepositoryImpl, rnd *render.Render, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := helpers.BearerToken(r)
			if token == "" {
				if required {
					_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized: No token provided"})
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				log.Printf("AuthMiddleware: token rejected: %v", err)
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized: Invalid token"})
				return
			}

			user, err := userRepo.FindByID(r.Context(), claims.Subject)
			if err != nil {
				log.Printf("AuthMiddleware: error finding user %s: %v", claims.Subject, err)
				_ = rnd.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to resolve user"})
				return
			}
			if user == nil {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized: Unknown user"})
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUser, user)
			ctx = context.WithValue(ctx, helpers.ContextKeyUserID, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware requires an authenticated user with the admin role.
// A missing identity is 401; a resolved identity without the role
// claim is 403, so the two cases stay distinguishable.
func AdminMiddleware(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
			if !ok || user == nil {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized: No token provided"})
				return
			}

			if user.Role != models.RoleAdmin {
				log.Printf("AdminMiddleware: user %s (%s) attempted admin access without admin role", user.ID, user.Email)
				_ = rnd.JSON(w, http.StatusForbidden, map[string]string{"error": "Forbidden: Admin access required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the resolved identity, if any.
func UserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}
