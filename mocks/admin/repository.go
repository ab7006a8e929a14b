package mocks

import (
	"context"

	"github.com/npesaras/clens/admin"
	"github.com/stretchr/testify/mock"
)

// Repository is a mock of admin.Repository
type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, newAdmin admin.Admin) (*admin.Admin, error) {
	ret := m.Called(ctx, newAdmin)
	created, _ := ret.Get(0).(*admin.Admin)
	return created, ret.Error(1)
}

func (m *Repository) Get(ctx context.Context, id uint) (*admin.Admin, error) {
	ret := m.Called(ctx, id)
	found, _ := ret.Get(0).(*admin.Admin)
	return found, ret.Error(1)
}

func (m *Repository) GetByUser(ctx context.Context, userID uint) (*admin.Admin, error) {
	ret := m.Called(ctx, userID)
	found, _ := ret.Get(0).(*admin.Admin)
	return found, ret.Error(1)
}

func (m *Repository) List(ctx context.Context) ([]admin.Admin, error) {
	ret := m.Called(ctx)
	admins, _ := ret.Get(0).([]admin.Admin)
	return admins, ret.Error(1)
}

func (m *Repository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*admin.Admin, error) {
	ret := m.Called(ctx, id, fields)
	updated, _ := ret.Get(0).(*admin.Admin)
	return updated, ret.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id uint) (*admin.Admin, error) {
	ret := m.Called(ctx, id)
	deleted, _ := ret.Get(0).(*admin.Admin)
	return deleted, ret.Error(1)
}
