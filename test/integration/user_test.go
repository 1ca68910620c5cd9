package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	userID, token := createUserAndToken(t, app.DB)
	otherID, _ := createUserAndToken(t, app.DB)

	// Me
	status, body := app.Client.do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID.String(), body["id"])

	// List
	status, users := app.Client.doList(t, http.MethodGet, "/api/users", token)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, users, 2)

	// Get by id
	status, body = app.Client.do(t, http.MethodGet, "/api/users/"+otherID.String(), token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, otherID.String(), body["id"])

	// Unknown id
	status, _ = app.Client.do(t, http.MethodGet, "/api/users/6e8bc430-9c3a-11d9-9669-0800200c9a66", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Delete, then repeat delete is a 404, not a silent success
	status, body = app.Client.do(t, http.MethodDelete, "/api/users/"+otherID.String(), token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User deleted successfully", body["message"])

	status, _ = app.Client.do(t, http.MethodDelete, "/api/users/"+otherID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTokenForDeletedUserIsRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	adminID, adminToken := createUserAndToken(t, app.DB)
	_ = adminID

	victimID, victimToken := createUserAndToken(t, app.DB)

	// The victim's token works until the account goes away.
	status, _ := app.Client.do(t, http.MethodGet, "/api/habits", victimToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = app.Client.do(t, http.MethodDelete, "/api/users/"+victimID.String(), adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	// Still-valid signature, but the subject no longer resolves.
	status, _ = app.Client.do(t, http.MethodGet, "/api/habits", victimToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
