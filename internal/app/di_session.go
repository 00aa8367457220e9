package app

import (
	"fmt"

	authUseCase "github.com/allisson/authgate/internal/auth/usecase"
	"github.com/allisson/authgate/internal/config"
	"github.com/allisson/authgate/internal/database"
	sessionRepository "github.com/allisson/authgate/internal/session/repository"
	sessionUseCase "github.com/allisson/authgate/internal/session/usecase"
)

// SessionRepository returns the session repository for the configured backend.
func (c *Container) SessionRepository() (sessionUseCase.SessionRepository, error) {
	var err error
	c.sessionRepositoryInit.Do(func() {
		c.sessionRepository, err = c.initSessionRepository()
		if err != nil {
			c.initErrors["sessionRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionRepository"]; exists {
		return nil, storedErr
	}
	return c.sessionRepository, nil
}

// SessionAuthority returns the session strategy consulted before tokens.
func (c *Container) SessionAuthority() (authUseCase.SessionAuthority, error) {
	var err error
	c.sessionAuthorityInit.Do(func() {
		c.sessionAuthority, err = c.initSessionAuthority()
		if err != nil {
			c.initErrors["sessionAuthority"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionAuthority"]; exists {
		return nil, storedErr
	}
	return c.sessionAuthority, nil
}

// initSessionRepository selects the session store by SESSION_BACKEND and, for SQL, by driver.
func (c *Container) initSessionRepository() (sessionUseCase.SessionRepository, error) {
	switch c.config.SessionBackend {
	case config.SessionBackendRedis:
		repo, err := sessionRepository.NewRedisSessionRepository(c.RedisClient(), c.config.RedisKeyPrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session repository: %w", err)
		}
		return repo, nil
	case config.SessionBackendDatabase, "":
	default:
		return nil, fmt.Errorf("unsupported session backend: %s", c.config.SessionBackend)
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for session repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return sessionRepository.NewMySQLSessionRepository(db), nil
	case database.DriverPostgres:
		return sessionRepository.NewPostgreSQLSessionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSessionAuthority creates the session authority reading the configured cookie.
func (c *Container) initSessionAuthority() (authUseCase.SessionAuthority, error) {
	repo, err := c.SessionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get session repository for session authority: %w", err)
	}
	return sessionUseCase.NewSessionAuthority(repo, c.config.SessionCookieName, c.Logger()), nil
}
