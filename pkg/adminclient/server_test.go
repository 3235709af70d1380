package adminclient

import (
	"net"
	"path/filepath"
	"testing"
	"time"

	"jewelry_backend/internals/configs"
	database "jewelry_backend/internals/databases"
	"jewelry_backend/internals/databases/migrations"
	routes "jewelry_backend/internals/route"
	"jewelry_backend/internals/seeds/admins"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ownerEmail    = "owner@example.com"
	ownerPassword = "password123"
)

type testServer struct {
	URL string
	DB  *gorm.DB
}

// startServer runs the full API on a loopback port with a fresh SQLite
// database and one seeded super_admin.
func startServer(t *testing.T) *testServer {
	t.Helper()
	log := zap.NewNop()

	db, err := database.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared", nil)
	require.NoError(t, err)
	require.NoError(t, database.TunePool(db))
	require.NoError(t, migrations.RunInOrder(db, log))
	require.NoError(t, admins.SeedAdmin(db, admins.AdminSeed{
		Email: ownerEmail, Username: "owner", Password: ownerPassword,
	}, log))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + ln.Addr().String()

	cfg := &configs.Config{
		Env:               "test",
		JWTSecret:         "client-test-secret",
		JWTExpiresIn:      time.Hour,
		CORSOrigin:        "*",
		RateLimitWindow:   time.Minute,
		RateLimitMax:      10000,
		LoginRateLimitMax: 1000,
		UploadDir:         filepath.Join(t.TempDir(), "uploads"),
		UploadMaxBytes:    1 << 20,
		PublicBaseURL:     base,
	}
	app, err := routes.NewApp(cfg, db, log)
	require.NoError(t, err)

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() {
		_ = app.Shutdown()
		_ = database.Close(db)
	})
	return &testServer{URL: base, DB: db}
}

func loggedIn(t *testing.T, srv *testServer) *Client {
	t.Helper()
	c := New(srv.URL, nil, WithTimeout(5*time.Second))
	_, err := c.Login(t.Context(), ownerEmail, ownerPassword)
	require.NoError(t, err)
	return c
}
