package services

import (
	"context"
	"testing"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Resolve(t *testing.T) {
	svc := NewUserService(&mockUserRepo{users: []models.User{
		{ID: 1, AuthID: "auth-1", Email: "ana@lanca.app", FullName: "Ana Souza", Role: models.RoleAdmin},
		{ID: 2, Email: "bruno@lanca.app", FullName: "Bruno"},
	}})
	ctx := context.Background()

	tests := []struct {
		name    string
		subject string
		email   string
		want    models.CurrentUser
	}{
		{"by provider id", "auth-1", "", models.CurrentUser{ID: "auth-1", Email: "ana@lanca.app", Role: models.RoleAdmin, Name: "Ana Souza"}},
		{"by email", "auth-2", "bruno@lanca.app", models.CurrentUser{ID: "auth-2", Email: "bruno@lanca.app", Role: models.RoleUser, Name: "Bruno"}},
		{"no profile", "auth-3", "Carla@Lanca.app", models.CurrentUser{ID: "auth-3", Email: "carla@lanca.app", Role: models.RoleUser, Name: "carla@lanca.app"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Resolve(ctx, tt.subject, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}
