package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shopora/shop-backend/internal/models"
)

type publishedEvent struct {
	Topic string
	Key   string
	Event interface{}
}

type fakePublisher struct {
	events []publishedEvent
}

func (f *fakePublisher) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	f.events = append(f.events, publishedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	A      *AuthHandler
	P      *ProductHandler
	U      *UploadHandler
	DB     *gorm.DB
	Events *fakePublisher
	Secret []byte
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.User{}))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	events := &fakePublisher{}
	secret := []byte("test_secret")

	return &testEnv{
		T:      t,
		E:      echo.New(),
		A:      &AuthHandler{DB: db, JWTSecret: secret, Producer: events},
		P:      &ProductHandler{DB: db, Producer: events},
		U:      &UploadHandler{Dir: t.TempDir(), BaseURL: "http://localhost:8080"},
		DB:     db,
		Events: events,
		Secret: secret,
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) addProduct(name, category string, newPrice float64) {
	env.T.Helper()

	payload := map[string]interface{}{
		"name":      name,
		"image":     "http://localhost:8080/images/" + name + ".png",
		"category":  category,
		"new_price": newPrice,
		"old_price": newPrice + 10,
	}
	rec, c := env.doJSONRequest("POST", "/addproduct", payload)
	require.NoError(env.T, env.P.AddProduct(c))
	require.Equal(env.T, 200, rec.Code)
}
