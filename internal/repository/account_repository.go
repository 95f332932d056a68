package repository

import (
	"context"
	"strings"

	"github.com/iliyamo/school-admin/internal/model"
	"github.com/iliyamo/school-admin/internal/utils"
)

// AccountRepo is the fixed list of demo logins.  Passwords are hashed once
// when the repository is built.
type AccountRepo struct {
	accounts []model.Account
}

// NewAccountRepo hashes every seed password with the given bcrypt cost.
func NewAccountRepo(seed []model.Account, cost int) (*AccountRepo, error) {
	accounts := make([]model.Account, len(seed))
	for i, a := range seed {
		hash, err := utils.HashPassword(a.Password, cost)
		if err != nil {
			return nil, err
		}
		a.PasswordHash = hash
		accounts[i] = a
	}
	return &AccountRepo{accounts: accounts}, nil
}

// List returns the demo accounts in display order.
func (r *AccountRepo) List() []model.Account {
	out := make([]model.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// GetByEmail matches the email exactly after trimming surrounding spaces.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	if err := ctx.Err(); err != nil {
		return model.Account{}, err
	}
	email = strings.TrimSpace(email)
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return model.Account{}, &NotFoundError{Entity: "account", ID: email}
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (model.Account, error) {
	if err := ctx.Err(); err != nil {
		return model.Account{}, err
	}
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Account{}, &NotFoundError{Entity: "account", ID: id}
}
