package service

import (
	"context"
	"errors"
	"time"

	"stickynotes/internal/model"
	appErr "stickynotes/internal/pkg/errors"
	"stickynotes/internal/pkg/jwt"
	"stickynotes/internal/pkg/password"
	"stickynotes/internal/pkg/timeutil"
)

type AuthService struct {
	accounts  AccountStore
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(accounts AccountStore, secret []byte, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = jwt.DefaultTTL
	}
	return &AuthService{accounts: accounts, jwtSecret: secret, jwtTTL: ttl}
}

// Signup creates the account. The pre-check gives the common case a clean
// error; the unique index on user_email catches the concurrent one.
func (s *AuthService) Signup(ctx context.Context, userName, userEmail, plainPassword string) (*model.Account, error) {
	if _, err := s.accounts.GetByEmail(ctx, userEmail); err == nil {
		return nil, appErr.ErrEmailTaken
	} else if !errors.Is(err, appErr.ErrNotFound) {
		return nil, err
	}
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	now := timeutil.NowUnix()
	account := &model.Account{
		UserID:       newID(),
		UserName:     userName,
		UserEmail:    userEmail,
		PasswordHash: hash,
		CreateOn:     now,
		LastUpdate:   now,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login deliberately reports unknown email and wrong password the same way.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*model.Account, string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, appErr.ErrNotFound) {
			return nil, "", appErr.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := password.Compare(account.PasswordHash, plainPassword); err != nil {
		return nil, "", appErr.ErrInvalidCredentials
	}
	token, err := jwt.GenerateToken(account.UserID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}
