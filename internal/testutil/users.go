package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/npesaras/clens/user"
	userGorm "github.com/npesaras/clens/user/repository/gorm"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SeedUsers creates count users of kind and returns them together with the
// repository that stores them.
func SeedUsers(t testing.TB, db *gorm.DB, kind user.Type, count int) (user.Repository, []*user.User) {
	t.Helper()

	ur := userGorm.NewGormUserRepository(db)
	seeded := make([]*user.User, 0, count)
	for i := 0; i < count; i++ {
		created, err := ur.Create(context.Background(), user.User{
			UserType:   kind,
			Username:   fmt.Sprintf("%s%d", kind, i),
			Email:      fmt.Sprintf("%s%d@clens.ph", kind, i),
			FirstName:  "Juan",
			MiddleName: "Cruz",
			LastName:   fmt.Sprintf("Dela Cruz %d", i),
			Password:   "hashed",
		})
		require.NoError(t, err)
		seeded = append(seeded, created)
	}
	return ur, seeded
}
