package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"github.com/mazboy1/frasa-backend/internal/handler/http/middleware"
	infrajwt "github.com/mazboy1/frasa-backend/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeUserRepo serves role lookups from an in-memory map.
type fakeUserRepo struct {
	users map[string]entity.User
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]entity.User{}}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.users[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) ListUsers(ctx context.Context) ([]entity.User, error) { return nil, nil }

func (r *fakeUserRepo) ListByRole(ctx context.Context, role entity.UserRole) ([]entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id string, user *entity.User) (*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) SetRole(ctx context.Context, id string, role entity.UserRole) error {
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error { return nil }

func (r *fakeUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	return 0, nil
}

func signedToken(t *testing.T, email, name, role string, expiry time.Duration) string {
	t.Helper()
	mgr := infrajwt.NewJWTManager(testSecret, expiry)
	token, err := mgr.GenerateToken(email, name, role)
	assert.NoError(t, err)
	return token
}

func protectedRouter(repo *fakeUserRepo, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokenService := infrajwt.NewTokenService(infrajwt.NewJWTManager(testSecret, time.Hour))
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleWare(tokenService)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := protectedRouter(newFakeUserRepo())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no authorization token provided")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := protectedRouter(newFakeUserRepo())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "just-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid authorization format")
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	r := protectedRouter(newFakeUserRepo())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access - invalid token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := protectedRouter(newFakeUserRepo())
	token := signedToken(t, "test@example.com", "Test User", "user", -time.Minute)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access - invalid token")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := protectedRouter(newFakeUserRepo())
	token := signedToken(t, "test@example.com", "Test User", "user", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	repo := newFakeUserRepo(entity.User{Email: "admin@example.com", Role: entity.UserRoleAdmin})
	r := protectedRouter(repo, middleware.AdminOnly(repo))
	token := signedToken(t, "admin@example.com", "Admin", "admin", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly_UserRejected(t *testing.T) {
	repo := newFakeUserRepo(entity.User{Email: "user@example.com", Role: entity.UserRoleUser})
	r := protectedRouter(repo, middleware.AdminOnly(repo))
	token := signedToken(t, "user@example.com", "User", "user", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized admin access")
}

// A demotion takes effect on the next request even when the token still
// claims the old role.
func TestAdminOnly_RoleReadFromStore(t *testing.T) {
	repo := newFakeUserRepo(entity.User{Email: "demoted@example.com", Role: entity.UserRoleUser})
	r := protectedRouter(repo, middleware.AdminOnly(repo))
	token := signedToken(t, "demoted@example.com", "Demoted", "admin", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInstructorOnly_InstructorPasses(t *testing.T) {
	repo := newFakeUserRepo(entity.User{Email: "instructor@example.com", Role: entity.UserRoleInstructor})
	r := protectedRouter(repo, middleware.InstructorOnly(repo))
	token := signedToken(t, "instructor@example.com", "Instructor", "instructor", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInstructorOnly_UserRejected(t *testing.T) {
	repo := newFakeUserRepo(entity.User{Email: "user@example.com", Role: entity.UserRoleUser})
	r := protectedRouter(repo, middleware.InstructorOnly(repo))
	token := signedToken(t, "user@example.com", "User", "user", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "only instructors can access this feature")
}

func selfGatedRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokenService := infrajwt.NewTokenService(infrajwt.NewJWTManager(testSecret, time.Hour))
	r := gin.New()
	r.GET("/cart/:email",
		middleware.AuthMiddleWare(tokenService),
		middleware.SelfOrPrivileged(repo, middleware.ParamEmail),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
	return r
}

func TestSelfOrPrivileged_SelfPasses(t *testing.T) {
	repo := newFakeUserRepo(entity.User{Email: "user@example.com", Role: entity.UserRoleUser})
	r := selfGatedRouter(repo)
	token := signedToken(t, "user@example.com", "User", "user", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cart/user@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSelfOrPrivileged_MismatchRejected(t *testing.T) {
	repo := newFakeUserRepo(
		entity.User{Email: "user@example.com", Role: entity.UserRoleUser},
		entity.User{Email: "other@example.com", Role: entity.UserRoleUser},
	)
	r := selfGatedRouter(repo)
	token := signedToken(t, "user@example.com", "User", "user", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cart/other@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access - email mismatch")
}

func selfOnlyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokenService := infrajwt.NewTokenService(infrajwt.NewJWTManager(testSecret, time.Hour))
	r := gin.New()
	r.GET("/instructor/my-classes",
		middleware.AuthMiddleWare(tokenService),
		middleware.SelfOnly(middleware.QueryEmail),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "classes": []string{"secret syllabus"}})
		})
	return r
}

func TestSelfOnly_SelfPasses(t *testing.T) {
	r := selfOnlyRouter()
	token := signedToken(t, "instructor@example.com", "Instructor", "instructor", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/instructor/my-classes?email=instructor@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// Another instructor's listing stays closed to everyone but its owner;
// instructor and admin roles get no bypass here.
func TestSelfOnly_AdminMismatchRejected(t *testing.T) {
	r := selfOnlyRouter()
	token := signedToken(t, "admin@example.com", "Admin", "admin", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/instructor/my-classes?email=victim@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access - email mismatch")
	assert.NotContains(t, w.Body.String(), "secret syllabus")
}

func TestSelfOnly_InstructorMismatchRejected(t *testing.T) {
	r := selfOnlyRouter()
	token := signedToken(t, "other-instructor@example.com", "Other", "instructor", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/instructor/my-classes?email=victim@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "secret syllabus")
}

func TestSelfOnly_MissingEmailParam(t *testing.T) {
	r := selfOnlyRouter()
	token := signedToken(t, "instructor@example.com", "Instructor", "instructor", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/instructor/my-classes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email parameter required")
}

func TestSelfOrPrivileged_AdminReadsOtherCart(t *testing.T) {
	repo := newFakeUserRepo(
		entity.User{Email: "admin@example.com", Role: entity.UserRoleAdmin},
		entity.User{Email: "user@example.com", Role: entity.UserRoleUser},
	)
	r := selfGatedRouter(repo)
	token := signedToken(t, "admin@example.com", "Admin", "admin", time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cart/user@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
