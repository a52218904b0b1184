package console

import (
	"assetconsole/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterUsers(t *testing.T) {
	users := []models.User{
		{ID: "u1", Role: models.AdminRole},
		{ID: "u2", Role: models.UserRole},
		{ID: "u3", Role: models.UserRole},
	}

	testCases := []struct {
		name        string
		role        models.Role
		expectedIDs []string
	}{
		{name: "no filter", expectedIDs: []string{"u1", "u2", "u3"}},
		{name: "admins", role: models.AdminRole, expectedIDs: []string{"u1"}},
		{name: "users", role: models.UserRole, expectedIDs: []string{"u2", "u3"}},
		{name: "unknown role", role: models.Role("Guest"), expectedIDs: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ids := []string{}
			for _, u := range FilterUsers(users, tc.role) {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}
