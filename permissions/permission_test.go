package permissions_test

import (
	"net/http"
	"testing"

	"rentals/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedRoutes(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		path   string
		method string
		skip   bool
		roles  []string
	}{
		{path: "/v1/auth/login", method: http.MethodPost, skip: true},
		{path: "/v1/rooms/search", method: http.MethodGet, skip: true},
		{path: "/v1/properties", method: http.MethodPost, roles: []string{"owner"}},
		{path: "/v1/requests", method: http.MethodPost, roles: []string{"seeker"}},
		{path: "/v1/requests/{id}/decision", method: http.MethodPost, roles: []string{"owner"}},
		{path: "/v1/admin/rooms/{id}", method: http.MethodDelete, roles: []string{"administrator"}},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.path, permission.Path)
			assert.Equal(t, tt.skip, permission.Skip)

			if !tt.skip {
				assert.Equal(t, tt.roles, permission.Permissions)
			}
		})
	}
}

func TestFindPermissions_Unknown(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	permission := data.FindPermissions("/v1/nowhere", http.MethodGet)
	assert.False(t, permission.Skip)
	assert.Empty(t, permission.Path)
}
