package usecase

import (
	"context"
	"crypto/subtle"

	"event-coupon-admin/internal/domain/admin"
	"event-coupon-admin/internal/infra"
	"event-coupon-admin/internal/pkg/errs"
	"event-coupon-admin/internal/pkg/jwt"
	"event-coupon-admin/internal/pkg/password"
	"event-coupon-admin/internal/usecase/queries"
	"event-coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAuthInvalidCredentials    = errs.New("invalid email or password")
	ErrAuthInvalidToken          = errs.New("invalid or expired token")
	ErrInvalidRegistrationSecret = errs.New("invalid registration secret")
	ErrAdminAlreadyExists        = errs.New("admin already exists")
	ErrRegistrationDisabled      = errs.New("admin registration is disabled")
)

type LoginResult struct {
	Token string
	Admin *queries.AuthorizedAdminView
}

type RegisterAdminResult struct {
	Admin      *queries.AuthorizedAdminView
	FirstAdmin bool
}

// TokenValidator is the narrow surface the auth middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	// RegisterAdmin creates an admin when the shared registration secret
	// matches. The first admin also seeds the default settings row.
	RegisterAdmin(ctx context.Context, name, email, rawPassword, secret string) (*RegisterAdminResult, error)
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type authUseCaseImpl struct {
	uow                shared.UnitOfWork
	adminReadStore     queries.AdminReadStore
	jwtService         *jwt.Service
	registrationSecret string
}

func NewAuthUseCase(uow shared.UnitOfWork, adminReadStore queries.AdminReadStore, jwtService *jwt.Service, registrationSecret string) AuthUseCase {
	return &authUseCaseImpl{
		uow:                uow,
		adminReadStore:     adminReadStore,
		jwtService:         jwtService,
		registrationSecret: registrationSecret,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	credentials, err := admin.NewCredentials(email, rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthInvalidCredentials)
	}

	view, passwordHash, err := a.adminReadStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAuthInvalidCredentials)
		}
		return nil, err
	}

	if err := password.ComparePassword(passwordHash, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrAuthInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.Email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Admins().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Admin: view}, nil
}

func (a *authUseCaseImpl) RegisterAdmin(ctx context.Context, name, email, rawPassword, secret string) (*RegisterAdminResult, error) {
	if a.registrationSecret == "" {
		return nil, ErrRegistrationDisabled
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(a.registrationSecret)) != 1 {
		return nil, ErrInvalidRegistrationSecret
	}

	credentials, err := admin.NewCredentials(email, rawPassword)
	if err != nil {
		return nil, err
	}

	passwordHash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newAdmin := admin.NewAdmin(name, credentials.Email(), passwordHash)
	result := &RegisterAdminResult{}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Admins().Count(ctx)
		if err != nil {
			return err
		}
		result.FirstAdmin = count == 0

		adminID, err := tx.Admins().Create(ctx, newAdmin)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrAdminAlreadyExists)
			}
			return err
		}

		result.Admin = &queries.AuthorizedAdminView{
			ID:    adminID,
			Name:  newAdmin.Name(),
			Email: newAdmin.Email().Value(),
		}

		if result.FirstAdmin {
			return tx.Settings().EnsureDefaults(ctx, queries.DefaultCityName, queries.DefaultTimezone)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthInvalidToken)
	}
	return claims.AdminID, nil
}
