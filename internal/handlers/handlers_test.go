package handlers_test

import (
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abagency/backend/config"
	"github.com/abagency/backend/internal/helpers"
	"github.com/abagency/backend/internal/mailer"
	"github.com/abagency/backend/internal/middleware"
	"github.com/abagency/backend/internal/migrations"
	"github.com/abagency/backend/internal/models"
	"github.com/abagency/backend/internal/server"
)

// Handlers render a handful of pages; the tests only care that the right
// template is selected with the right data.
const testTemplates = `
{{define "index.html"}}index{{end}}
{{define "login.html"}}login error={{.error}}{{end}}
{{define "workspace.html"}}workspace {{.current_user.Name}}{{end}}
`

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	return setupTestWithNotifier(t, mailer.Noop{})
}

func setupTestWithNotifier(t *testing.T, notifier mailer.Notifier) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	cfg := &config.Config{
		SecretKey:      "test-secret",
		AssetDir:       t.TempDir(),
		UploadDir:      t.TempDir(),
		InquiryLogPath: filepath.Join(t.TempDir(), "inquiries.jsonl"),
	}

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("test").Parse(testTemplates)))
	server.SetupRoutes(r, db, cfg, notifier)

	return r, db, cfg
}

func findUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return &user
}

// withSession attaches a valid session cookie for the given user.
func withSession(t *testing.T, req *http.Request, cfg *config.Config, userID uint) {
	t.Helper()
	token, err := helpers.SignSessionToken(cfg.SecretKey, userID)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
