package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authUseCase "github.com/allisson/authgate/internal/auth/usecase"
	"github.com/allisson/authgate/internal/httputil"
)

// AuthenticationMiddleware admits requests that carry a live session or a valid token.
//
// The resolver decides; the middleware only translates its answer:
//   - authenticated → identity stored in the request context, handler chain continues
//   - expired token → 419 {"error": "Authentication token expired."}
//   - missing or unknown token → 419 {"error": "Could not authenticate with token. Token invalid."}
//   - any other failure → 500
//
// Usage:
//
//	router.Use(AuthenticationMiddleware(resolver, logger))
//	router.GET("/protected", func(c *gin.Context) {
//	    identity, _ := GetIdentity(c.Request.Context())
//	})
func AuthenticationMiddleware(resolver authUseCase.AuthResolver, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := authenticate(resolver, c.Request)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			return
		}

		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// authenticate gates on IsAuthenticated and then loads the identity to store.
func authenticate(resolver authUseCase.AuthResolver, r *http.Request) (*authDomain.Identity, error) {
	ok, err := resolver.IsAuthenticated(r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, authDomain.ErrAuthTokenInvalid
	}

	identity, err := resolver.CurrentIdentity(r)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		// The token or session disappeared between the two lookups.
		return nil, authDomain.ErrAuthTokenInvalid
	}
	return identity, nil
}
