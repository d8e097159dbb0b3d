package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/session"
)

// SessionService implements login and logout on top of the in-memory session
// registry. The registry is injected; this service holds no state of its own.
type SessionService struct {
	userRepo repository.UserRepository
	registry *session.Registry
}

// NewSessionService returns a new SessionService.
func NewSessionService(userRepo repository.UserRepository, registry *session.Registry) *SessionService {
	return &SessionService{userRepo: userRepo, registry: registry}
}

// Login verifies the credentials and creates or refreshes the user's session.
// The session token is not part of the result: clients re-present credentials
// on subsequent requests instead of a bearer token.
func (s *SessionService) Login(ctx context.Context, userID, password string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return storeLookupError(err, "User", userID)
	}
	if err := authorizeUser(user, password); err != nil {
		return err
	}

	s.registry.Begin(userID)
	return nil
}

// Logout verifies the credentials, resolves the session, and removes it.
// A user with no session record at all gets SESSION_NOT_FOUND; a user whose
// record has expired gets NOT_AUTHENTICATED. Expired records are removed only
// here or by a fresh login, never by a background sweep.
func (s *SessionService) Logout(ctx context.Context, userID, password string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return storeLookupError(err, "User", userID)
	}
	if err := authorizeUser(user, password); err != nil {
		return err
	}

	rec, ok := s.registry.Lookup(userID)
	if !ok {
		return models.NewSessionNotFoundError(userID)
	}
	if !rec.Live(s.registry.Now()) {
		return models.NewNotAuthenticatedError("Session expired, log in again")
	}

	s.registry.End(userID)
	return nil
}
