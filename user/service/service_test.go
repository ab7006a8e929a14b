package service

import (
	"context"
	"errors"
	"testing"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/config"
	userMocks "github.com/npesaras/clens/mocks/user"
	"github.com/npesaras/clens/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(minimumScore int) config.Configuration {
	return config.Configuration{
		Credential: config.Credential{
			SaltRounds:   bcrypt.MinCost,
			MinimumScore: minimumScore,
			ProfaneCheck: true,
		},
	}
}

func validPayload() user.CreatePayload {
	return user.CreatePayload{
		UserType:   user.Civilian,
		Username:   "juandelacruz",
		Email:      "juan@clens.ph",
		FirstName:  "Juan",
		MiddleName: "Santos",
		LastName:   "Dela Cruz",
		Password:   "correct-horse-battery-staple",
	}
}

func TestUserServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		ur := &userMocks.Repository{}
		testService := NewUserService(testConfig(0), ur)

		payload := validPayload()
		var stored user.User
		ur.On("Create", ctx, mock.AnythingOfType("user.User")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(user.User)
			}).
			Return(&user.User{Username: payload.Username}, nil)

		created, err := testService.Create(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, payload.Username, created.Username)
		assert.Equal(t, payload.Username, stored.Username)
		assert.NotEqual(t, payload.Password, stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(payload.Password)))
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, test := range []struct {
			name         string
			minimumScore int
			payload      func(p *user.CreatePayload)
			setup        func(ur *userMocks.Repository)
			code         internal.ErrorCode
			message      string
		}{
			{
				name:    "Unknown user type",
				payload: func(p *user.CreatePayload) { p.UserType = "driver" },
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: usertype must be one of: admin, civilian, collector",
			},
			{
				name:    "Invalid email",
				payload: func(p *user.CreatePayload) { p.Email = "juan" },
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: email must be a valid Email address",
			},
			{
				name:    "Profane username",
				payload: func(p *user.CreatePayload) { p.Username = "shithead" },
				code:    internal.ErrorCodeInvalidArgument,
				message: user.ErrUsernameProfane.Error(),
			},
			{
				name:         "Weak password",
				minimumScore: 3,
				payload:      func(p *user.CreatePayload) { p.Password = "password" },
				code:         internal.ErrorCodeInvalidArgument,
				message:      user.ErrPasswordWeak.Error(),
			},
			{
				name:    "Taken username",
				payload: func(p *user.CreatePayload) {},
				setup: func(ur *userMocks.Repository) {
					ur.On("Create", ctx, mock.AnythingOfType("user.User")).Return(nil, internal.ErrDuplicateRecord)
				},
				code:    internal.ErrorCodeInvalidArgument,
				message: user.ErrUserExists.Error(),
			},
			{
				name:    "Storage failure",
				payload: func(p *user.CreatePayload) {},
				setup: func(ur *userMocks.Repository) {
					ur.On("Create", ctx, mock.AnythingOfType("user.User")).Return(nil, errors.New("connection reset"))
				},
				code:    internal.ErrorCodeInternal,
				message: user.ErrUserExists.Error(),
			},
		} {
			t.Run(test.name, func(t *testing.T) {
				ur := &userMocks.Repository{}
				if test.setup != nil {
					test.setup(ur)
				}
				testService := NewUserService(testConfig(test.minimumScore), ur)

				payload := validPayload()
				test.payload(&payload)
				created, err := testService.Create(ctx, payload)
				require.Error(t, err)
				assert.Nil(t, created)

				var e *internal.Error
				require.ErrorAs(t, err, &e)
				assert.Equal(t, test.code, e.Code())
				assert.Equal(t, test.message, e.Message())
				ur.AssertExpectations(t)
			})
		}
	})
}

func TestUserServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Only provided fields", func(t *testing.T) {
		ur := &userMocks.Repository{}
		testService := NewUserService(testConfig(0), ur)

		first := "Johnny"
		expect := &user.User{FirstName: first}
		ur.On("Update", ctx, uint(3), map[string]interface{}{"first_name": first}).Return(expect, nil)

		updated, err := testService.Update(ctx, 3, user.UpdatePayload{FirstName: &first})
		require.NoError(t, err)
		assert.Equal(t, expect, updated)
		ur.AssertExpectations(t)
	})

	t.Run("Profane username", func(t *testing.T) {
		ur := &userMocks.Repository{}
		testService := NewUserService(testConfig(0), ur)

		username := "shithead"
		_, err := testService.Update(ctx, 3, user.UpdatePayload{Username: &username})
		assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))
		ur.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing user", func(t *testing.T) {
		ur := &userMocks.Repository{}
		testService := NewUserService(testConfig(0), ur)

		ur.On("Update", ctx, uint(42), map[string]interface{}{}).Return(nil, internal.ErrRecordNotFound)

		_, err := testService.Update(ctx, 42, user.UpdatePayload{})
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
		assert.EqualError(t, err, "User with id 42 not found: record not found")
	})
}

func TestUserServiceDelete(t *testing.T) {
	ctx := context.Background()
	ur := &userMocks.Repository{}
	testService := NewUserService(testConfig(0), ur)

	ur.On("Delete", ctx, uint(5)).Return(nil, internal.ErrRecordNotFound)

	_, err := testService.Delete(ctx, 5)
	assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
}
