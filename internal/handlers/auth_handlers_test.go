package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopora/shop-backend/internal/models"
	"github.com/shopora/shop-backend/internal/service/token"
)

func signupPayload(email string) map[string]string {
	return map[string]string{
		"username": "test_user",
		"email":    email,
		"password": "password",
	}
}

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/signup", signupPayload("a@x.com"))
	require.NoError(t, env.A.Signup(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)

	var user models.User
	require.NoError(t, env.DB.Where("email = ?", "a@x.com").First(&user).Error)
	require.Equal(t, "test_user", user.Name)
	require.NotEqual(t, "password", user.PasswordHash)

	userID, err := token.Parse(resp.Token, env.Secret)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)

	require.Len(t, user.CartData, models.CartSlots)
	for key, qty := range user.CartData {
		require.Zero(t, qty, "slot %s should start empty", key)
	}

	require.Len(t, env.Events.events, 1)
	require.Equal(t, "user_events", env.Events.events[0].Topic)
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/signup", signupPayload("a@x.com"))
	require.NoError(t, env.A.Signup(c))
	require.Equal(t, http.StatusOK, rec.Code)

	rec2, c2 := env.doJSONRequest(http.MethodPost, "/signup", signupPayload("a@x.com"))
	require.NoError(t, env.A.Signup(c2))
	require.Equal(t, http.StatusBadRequest, rec2.Code)

	var resp struct {
		Success bool   `json:"success"`
		Errors  string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Errors)

	var count int64
	require.NoError(t, env.DB.Model(&models.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	recSignup, cSignup := env.doJSONRequest(http.MethodPost, "/signup", signupPayload("a@x.com"))
	require.NoError(t, env.A.Signup(cSignup))
	require.Equal(t, http.StatusOK, recSignup.Code)

	var signupResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(recSignup.Body.Bytes(), &signupResp))

	rec, c := env.doJSONRequest(http.MethodPost, "/login", map[string]string{
		"email":    "a@x.com",
		"password": "password",
	})
	require.NoError(t, env.A.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	signupID, err := token.Parse(signupResp.Token, env.Secret)
	require.NoError(t, err)
	loginID, err := token.Parse(resp.Token, env.Secret)
	require.NoError(t, err)
	require.Equal(t, signupID, loginID)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/login", map[string]string{
		"email":    "nobody@x.com",
		"password": "password",
	})
	require.NoError(t, env.A.Login(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Errors  string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "wrong email id", resp.Errors)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	recSignup, cSignup := env.doJSONRequest(http.MethodPost, "/signup", signupPayload("a@x.com"))
	require.NoError(t, env.A.Signup(cSignup))
	require.Equal(t, http.StatusOK, recSignup.Code)

	rec, c := env.doJSONRequest(http.MethodPost, "/login", map[string]string{
		"email":    "a@x.com",
		"password": "not-the-password",
	})
	require.NoError(t, env.A.Login(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Errors  string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "wrong password", resp.Errors)
}
