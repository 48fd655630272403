package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"volunteer-hub/internal/domain/user"
	reqdto "volunteer-hub/internal/handler/dto/request"
	"volunteer-hub/internal/infra"
	"volunteer-hub/internal/pkg/errs"
	"volunteer-hub/internal/pkg/jwt"
	"volunteer-hub/internal/pkg/password"
	"volunteer-hub/internal/usecase/queries"
	"volunteer-hub/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrDuplicateUser        = errs.New("dni or email already registered")
	ErrInvalidRegistration  = errs.New("invalid registration data")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      string
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		// Login already succeeded, only the bookkeeping failed.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    view.ID,
		Role:      view.Role,
		TokenPair: &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken},
	}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	dni, err := user.NewDNI(req.DNI)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRegistration)
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRegistration)
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRegistration)
	}
	size := user.ShirtSize(req.ShirtSize)
	if !size.IsValid() {
		return uuid.Nil, ErrInvalidRegistration
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRegistration)
	}

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Users().Create(ctx, shared.CreateUserParams{
			DNI:              dni.Value(),
			FullName:         req.FullName,
			Email:            email.Value(),
			Phone:            req.Phone,
			ShirtSize:        string(size),
			IsMember:         req.IsMember,
			AttendedPrevious: req.AttendedPrevious,
			IsOver18:         req.IsOver18,
			HowTheyHeard:     req.HowTheyHeard,
			Role:             user.RoleVolunteer.String(),
			PasswordHash:     hash,
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateUser
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = created
		slog.Info("volunteer registered", "user_id", id)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The user must still exist and be active.
	view, err := a.readStore.FindAuthorizedByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if view.Status != "active" {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hash, err := a.readStore.FindCredentialsByIdentifier(ctx, credentials.Identifier().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}
	if view.Status != "active" {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return view, nil
}
