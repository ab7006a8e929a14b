package mocks

import (
	"context"

	"github.com/npesaras/clens/user"
	"github.com/stretchr/testify/mock"
)

// Repository is a mock of user.Repository
type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, newUser user.User) (*user.User, error) {
	ret := m.Called(ctx, newUser)
	created, _ := ret.Get(0).(*user.User)
	return created, ret.Error(1)
}

func (m *Repository) Get(ctx context.Context, id uint) (*user.User, error) {
	ret := m.Called(ctx, id)
	found, _ := ret.Get(0).(*user.User)
	return found, ret.Error(1)
}

func (m *Repository) List(ctx context.Context) ([]user.User, error) {
	ret := m.Called(ctx)
	users, _ := ret.Get(0).([]user.User)
	return users, ret.Error(1)
}

func (m *Repository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*user.User, error) {
	ret := m.Called(ctx, id, fields)
	updated, _ := ret.Get(0).(*user.User)
	return updated, ret.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id uint) (*user.User, error) {
	ret := m.Called(ctx, id)
	deleted, _ := ret.Get(0).(*user.User)
	return deleted, ret.Error(1)
}
