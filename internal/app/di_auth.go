package app

import (
	"fmt"

	authHTTP "github.com/allisson/authgate/internal/auth/http"
	authRepository "github.com/allisson/authgate/internal/auth/repository"
	authService "github.com/allisson/authgate/internal/auth/service"
	authUseCase "github.com/allisson/authgate/internal/auth/usecase"
	"github.com/allisson/authgate/internal/database"
	userRepository "github.com/allisson/authgate/internal/user/repository"
)

// TokenService returns the token service for generating and hashing tokens.
func (c *Container) TokenService() authService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = authService.NewTokenService()
	})
	return c.tokenService
}

// Delayer returns the randomized delay applied to unknown tokens.
func (c *Container) Delayer() authService.Delayer {
	c.delayerInit.Do(func() {
		c.delayer = authService.NewRandomDelayer(c.config.AuthTokenDelayMin, c.config.AuthTokenDelayMax)
	})
	return c.delayer
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (authUseCase.UserRepository, error) {
	var err error
	c.userRepositoryInit.Do(func() {
		c.userRepository, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepository"]; exists {
		return nil, storedErr
	}
	return c.userRepository, nil
}

// TokenRepository returns the token repository based on database driver.
func (c *Container) TokenRepository() (authUseCase.TokenRepository, error) {
	var err error
	c.tokenRepositoryInit.Do(func() {
		c.tokenRepository, err = c.initTokenRepository()
		if err != nil {
			c.initErrors["tokenRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenRepository"]; exists {
		return nil, storedErr
	}
	return c.tokenRepository, nil
}

// TokenStore returns the token store consulted by the authenticator.
func (c *Container) TokenStore() (authUseCase.TokenStore, error) {
	var err error
	c.tokenStoreInit.Do(func() {
		c.tokenStore, err = c.initTokenStore()
		if err != nil {
			c.initErrors["tokenStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenStore"]; exists {
		return nil, storedErr
	}
	return c.tokenStore, nil
}

// TokenAuthenticator returns the token authenticator.
func (c *Container) TokenAuthenticator() *authUseCase.TokenAuthenticator {
	c.tokenAuthenticatorInit.Do(func() {
		c.tokenAuthenticator = authUseCase.NewTokenAuthenticator(c.Delayer())
	})
	return c.tokenAuthenticator
}

// AuthResolver returns the request authentication resolver.
func (c *Container) AuthResolver() (authUseCase.AuthResolver, error) {
	var err error
	c.authResolverInit.Do(func() {
		c.authResolver, err = c.initAuthResolver()
		if err != nil {
			c.initErrors["authResolver"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authResolver"]; exists {
		return nil, storedErr
	}
	return c.authResolver, nil
}

// TokenUseCase returns the token issuance use case.
func (c *Container) TokenUseCase() (authUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// IdentityHandler returns the HTTP handler for identity endpoints.
func (c *Container) IdentityHandler() *authHTTP.IdentityHandler {
	c.identityHandlerInit.Do(func() {
		c.identityHandler = authHTTP.NewIdentityHandler(c.Logger())
	})
	return c.identityHandler
}

// initUserRepository creates the user repository instance.
func (c *Container) initUserRepository() (authUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return userRepository.NewMySQLUserRepository(db), nil
	case database.DriverPostgres:
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenRepository creates the token repository instance.
func (c *Container) initTokenRepository() (authUseCase.TokenRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for token repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return authRepository.NewMySQLTokenRepository(db), nil
	case database.DriverPostgres:
		return authRepository.NewPostgreSQLTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenStore adapts the token repository to the TokenStore capability.
func (c *Container) initTokenStore() (authUseCase.TokenStore, error) {
	tokenRepository, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for token store: %w", err)
	}
	return authUseCase.NewTokenStore(tokenRepository, c.TokenService()), nil
}

// initAuthResolver creates the resolver, wrapped with metrics when enabled.
func (c *Container) initAuthResolver() (authUseCase.AuthResolver, error) {
	sessionAuthority, err := c.SessionAuthority()
	if err != nil {
		return nil, fmt.Errorf("failed to get session authority for auth resolver: %w", err)
	}

	tokenStore, err := c.TokenStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get token store for auth resolver: %w", err)
	}

	baseResolver := authUseCase.NewAuthResolver(
		sessionAuthority,
		tokenStore,
		c.TokenAuthenticator(),
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth resolver: %w", err)
		}
		return authUseCase.NewAuthResolverWithMetrics(baseResolver, businessMetrics), nil
	}

	return baseResolver, nil
}

// initTokenUseCase creates the token use case with all its dependencies.
func (c *Container) initTokenUseCase() (authUseCase.TokenUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for token use case: %w", err)
	}

	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for token use case: %w", err)
	}

	tokenRepository, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for token use case: %w", err)
	}

	baseUseCase := authUseCase.NewTokenUseCase(
		c.config,
		txManager,
		userRepository,
		tokenRepository,
		c.TokenService(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
		}
		return authUseCase.NewTokenUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
