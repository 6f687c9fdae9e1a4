package permissions_test

import (
	"net/http"
	"testing"

	"voyage/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)

	t.Run("catalogue reads are public", func(t *testing.T) {
		assert.True(t, data.FindPermissions("/v1/room-types/{id}/availability", http.MethodGet).Skip)
		assert.True(t, data.FindPermissions("/v1/hotels/{id}/rating", http.MethodGet).Skip)
	})

	t.Run("guests can book but not confirm", func(t *testing.T) {
		create := data.FindPermissions("/v1/bookings/", http.MethodPost)
		assert.Contains(t, create.Permissions, "user")

		confirm := data.FindPermissions("/v1/bookings/{id}/confirm", http.MethodPost)
		assert.NotContains(t, confirm.Permissions, "user")
		assert.Contains(t, confirm.Permissions, "admin")
	})

	t.Run("review photos are public to read and guests can add them", func(t *testing.T) {
		assert.True(t, data.FindPermissions("/v1/reviews/{id}/photos", http.MethodGet).Skip)
		assert.Contains(t, data.FindPermissions("/v1/reviews/{id}/photos", http.MethodPost).Permissions, "user")
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		assert.Equal(t, permissions.Permission{}, data.FindPermissions("/v1/unknown", http.MethodGet))
	})
}
