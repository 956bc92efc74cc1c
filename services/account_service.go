package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"campus-agenda/models"
	"campus-agenda/store"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AccountService registers and authenticates app accounts. Passwords
// are stored as bcrypt hashes and never leave the store layer.
type AccountService struct {
	Store store.AccountStore
}

func NewAccountService(st store.AccountStore) *AccountService {
	return &AccountService{Store: st}
}

func (s *AccountService) Register(ctx context.Context, name, email, password string) (models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Name:  name,
		Email: email,
		Role:  models.RoleUser,
	}
	return s.Store.CreateAccount(ctx, account, string(hash))
}

func (s *AccountService) Login(ctx context.Context, email, password string) (models.Account, error) {
	account, hash, err := s.Store.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Account{}, ErrInvalidCredentials
		}
		return models.Account{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return models.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.Store.ListAccounts(ctx)
}
