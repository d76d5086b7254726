package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcosrisk/internal/auth"
	"pcosrisk/internal/db"
	"pcosrisk/internal/repository"
	"pcosrisk/internal/service"
)

const fixturePath = "../../fixtures/assessments.json"

func TestLoadFixture_File(t *testing.T) {
	inputs, err := loadFixture(context.Background(), fixturePath)
	require.NoError(t, err)
	require.Len(t, inputs, 3)
	assert.Equal(t, "Irregular", inputs[0].Cycle)
	assert.Equal(t, "Regular", inputs[1].Cycle)
	assert.Equal(t, 0.0, inputs[0].NoOfAbortions)
}

func TestLoadFixture_URL(t *testing.T) {
	raw, err := os.ReadFile(fixturePath)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assessments.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(raw)
	}))
	defer srv.Close()

	inputs, err := loadFixture(context.Background(), srv.URL+"/assessments.json")
	require.NoError(t, err)
	assert.Len(t, inputs, 3)

	_, err = loadFixture(context.Background(), srv.URL+"/missing.json")
	assert.ErrorContains(t, err, "404")
}

func TestLoadFixture_IncompleteItem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"age": 30}]`), 0o600))

	_, err := loadFixture(context.Background(), path)
	assert.ErrorContains(t, err, "fixture item 0")
}

func TestEnsureUser_Idempotent(t *testing.T) {
	gormDB, err := db.Open("sqlite", ":memory:", zerolog.Nop())
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(gormDB))

	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewJWTService("seed-secret", 0), nil)
	ctx := context.Background()

	first, created, err := ensureUser(ctx, authService, userRepo, "Demo@Example.com", "pw", "Demo")
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, first.FullName)
	assert.Equal(t, "Demo", *first.FullName)

	second, created, err := ensureUser(ctx, authService, userRepo, "demo@example.com", "other", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}
