package booking_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	booking "github.com/zenyard/booking"
)

type apiFixture struct {
	app    *fiber.App
	db     *bun.DB
	tokens *booking.TokenService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	db := newTestDB(t)

	users := booking.NewUsersRepository(db)
	teachers := booking.NewTeachersRepository(db)
	sessions := booking.NewSessionsRepository(db)

	provider := booking.NewUserProvider(users)
	tokens := booking.NewTokenService(testSigningKey, time.Hour)
	auther := booking.NewAuthenticator(provider, tokens)
	gate := booking.NewTokenGate(tokens, provider)

	userService := booking.NewUserService(users)
	sessionService := booking.NewSessionService(sessions, users)
	teacherService := booking.NewTeacherService(teachers)

	app := fiber.New()
	booking.RegisterRoutes(app, gate, booking.Controllers{
		Auth:     booking.NewAuthController(auther, userService),
		Sessions: booking.NewSessionController(sessionService),
		Teachers: booking.NewTeacherController(teacherService),
		Users:    booking.NewUserController(userService),
	})

	return &apiFixture{app: app, db: db, tokens: tokens}
}

func (f *apiFixture) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	res, err := f.app.Test(req)
	require.NoError(t, err)
	return res
}

func (f *apiFixture) tokenFor(t *testing.T, user *booking.User) string {
	t.Helper()
	token, err := f.tokens.Issue(booking.NewPrincipalFromUser(user))
	require.NoError(t, err)
	return token
}

func decodeJSON[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(raw)
}

func TestAuthRoutes(t *testing.T) {
	t.Run("Register then login", func(t *testing.T) {
		f := newAPIFixture(t)

		res := f.request(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"email":     "toto@studio.com",
			"firstName": "Toto",
			"lastName":  "Tester",
			"password":  "test!1234",
		})
		assert.Equal(t, http.StatusOK, res.StatusCode)
		msg := decodeJSON[booking.MessageResponse](t, res)
		assert.Equal(t, "User registered successfully!", msg.Message)

		res = f.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "toto@studio.com",
			"password": "test!1234",
		})
		assert.Equal(t, http.StatusOK, res.StatusCode)

		jwtRes := decodeJSON[booking.JwtResponse](t, res)
		assert.NotEmpty(t, jwtRes.Token)
		assert.Equal(t, "Bearer", jwtRes.Type)
		assert.Equal(t, "toto@studio.com", jwtRes.Username)
		assert.Equal(t, "Toto", jwtRes.FirstName)
		assert.False(t, jwtRes.Admin)

		subject, err := f.tokens.Validate(jwtRes.Token)
		assert.NoError(t, err)
		assert.Equal(t, "toto@studio.com", subject)
	})

	t.Run("Duplicate registration", func(t *testing.T) {
		f := newAPIFixture(t)
		seedUser(t, f.db, "taken@studio.com", false)

		res := f.request(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"email":     "taken@studio.com",
			"firstName": "Other",
			"lastName":  "Person",
			"password":  "test!1234",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		msg := decodeJSON[booking.MessageResponse](t, res)
		assert.Equal(t, "Error: Email is already taken!", msg.Message)
	})

	t.Run("Invalid registration payload", func(t *testing.T) {
		f := newAPIFixture(t)

		res := f.request(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"email":     "not-an-email",
			"firstName": "Toto",
			"lastName":  "Tester",
			"password":  "test!1234",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("Unknown email and wrong password look the same", func(t *testing.T) {
		f := newAPIFixture(t)
		seedUser(t, f.db, "yoga@studio.com", false)

		resUnknown := f.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "nobody@studio.com",
			"password": "test!1234",
		})
		resWrong := f.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "yoga@studio.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, resUnknown.StatusCode)
		assert.Equal(t, http.StatusUnauthorized, resWrong.StatusCode)
		assert.Equal(t, readBody(t, resUnknown), readBody(t, resWrong))
	})
}

func TestSessionRoutes(t *testing.T) {
	t.Run("Protected without a token", func(t *testing.T) {
		f := newAPIFixture(t)

		res := f.request(t, http.MethodGet, "/api/session/", "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("Create, fetch, update, delete", func(t *testing.T) {
		f := newAPIFixture(t)
		user := seedUser(t, f.db, "yoga@studio.com", true)
		teacher := seedTeacher(t, f.db, "Margot", "Delahaye")
		token := f.tokenFor(t, user)

		res := f.request(t, http.MethodPost, "/api/session/", token, fiber.Map{
			"name":        "morning flow",
			"date":        time.Now().Add(24 * time.Hour).Format(time.RFC3339),
			"teacher_id":  teacher.ID,
			"description": "sun salutations",
		})
		require.Equal(t, http.StatusOK, res.StatusCode)
		created := decodeJSON[booking.SessionResponse](t, res)
		assert.NotZero(t, created.ID)
		assert.Empty(t, created.Users)

		res = f.request(t, http.MethodGet, fmt.Sprintf("/api/session/%d", created.ID), token, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		res = f.request(t, http.MethodPut, fmt.Sprintf("/api/session/%d", created.ID), token, fiber.Map{
			"name":        "renamed",
			"date":        time.Now().Add(24 * time.Hour).Format(time.RFC3339),
			"teacher_id":  teacher.ID,
			"description": "sun salutations",
		})
		require.Equal(t, http.StatusOK, res.StatusCode)
		updated := decodeJSON[booking.SessionResponse](t, res)
		assert.Equal(t, "renamed", updated.Name)

		res = f.request(t, http.MethodDelete, fmt.Sprintf("/api/session/%d", created.ID), token, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		res = f.request(t, http.MethodGet, fmt.Sprintf("/api/session/%d", created.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("Bad and missing ids", func(t *testing.T) {
		f := newAPIFixture(t)
		user := seedUser(t, f.db, "yoga@studio.com", false)
		token := f.tokenFor(t, user)

		res := f.request(t, http.MethodGet, "/api/session/not-a-number", token, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		res = f.request(t, http.MethodGet, "/api/session/9999", token, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("Participation round trip", func(t *testing.T) {
		f := newAPIFixture(t)
		user := seedUser(t, f.db, "yoga@studio.com", false)
		teacher := seedTeacher(t, f.db, "Margot", "Delahaye")
		session := seedSession(t, f.db, teacher.ID, "morning flow")
		token := f.tokenFor(t, user)

		participate := fmt.Sprintf("/api/session/%d/participate/%d", session.ID, user.ID)

		res := f.request(t, http.MethodPost, participate, token, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		// duplicate join is a client error
		res = f.request(t, http.MethodPost, participate, token, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		res = f.request(t, http.MethodGet, fmt.Sprintf("/api/session/%d", session.ID), token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		got := decodeJSON[booking.SessionResponse](t, res)
		assert.Equal(t, []int64{user.ID}, got.Users)

		res = f.request(t, http.MethodDelete, participate, token, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		// leaving again is a client error
		res = f.request(t, http.MethodDelete, participate, token, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("Participate on a missing session", func(t *testing.T) {
		f := newAPIFixture(t)
		user := seedUser(t, f.db, "yoga@studio.com", false)
		token := f.tokenFor(t, user)

		res := f.request(t, http.MethodPost, fmt.Sprintf("/api/session/9999/participate/%d", user.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestTeacherRoutes(t *testing.T) {
	f := newAPIFixture(t)
	user := seedUser(t, f.db, "yoga@studio.com", false)
	margot := seedTeacher(t, f.db, "Margot", "Delahaye")
	seedTeacher(t, f.db, "Helene", "Thiercelin")
	token := f.tokenFor(t, user)

	t.Run("List", func(t *testing.T) {
		res := f.request(t, http.MethodGet, "/api/teacher/", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		records := decodeJSON[[]booking.TeacherResponse](t, res)
		require.Len(t, records, 2)
		assert.Equal(t, "Delahaye", records[0].LastName)
	})

	t.Run("Detail", func(t *testing.T) {
		res := f.request(t, http.MethodGet, fmt.Sprintf("/api/teacher/%d", margot.ID), token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		record := decodeJSON[booking.TeacherResponse](t, res)
		assert.Equal(t, "Margot", record.FirstName)
	})

	t.Run("Missing", func(t *testing.T) {
		res := f.request(t, http.MethodGet, "/api/teacher/9999", token, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		res := f.request(t, http.MethodGet, "/api/teacher/", "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})
}

func TestUserRoutes(t *testing.T) {
	t.Run("Fetch account", func(t *testing.T) {
		f := newAPIFixture(t)
		user := seedUser(t, f.db, "yoga@studio.com", false)
		token := f.tokenFor(t, user)

		res := f.request(t, http.MethodGet, fmt.Sprintf("/api/user/%d", user.ID), token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		record := decodeJSON[booking.UserResponse](t, res)
		assert.Equal(t, "yoga@studio.com", record.Email)
	})

	t.Run("Owner deletes own account", func(t *testing.T) {
		f := newAPIFixture(t)
		user := seedUser(t, f.db, "yoga@studio.com", false)
		token := f.tokenFor(t, user)

		res := f.request(t, http.MethodDelete, fmt.Sprintf("/api/user/%d", user.ID), token, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		// the account is gone, so the same token no longer authenticates
		res = f.request(t, http.MethodGet, fmt.Sprintf("/api/user/%d", user.ID), token, nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("Deleting someone else is forbidden even for admins", func(t *testing.T) {
		f := newAPIFixture(t)
		owner := seedUser(t, f.db, "owner@studio.com", false)
		admin := seedUser(t, f.db, "admin@studio.com", true)
		token := f.tokenFor(t, admin)

		res := f.request(t, http.MethodDelete, fmt.Sprintf("/api/user/%d", owner.ID), token, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("Missing account", func(t *testing.T) {
		f := newAPIFixture(t)
		user := seedUser(t, f.db, "yoga@studio.com", false)
		token := f.tokenFor(t, user)

		res := f.request(t, http.MethodGet, "/api/user/9999", token, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}
