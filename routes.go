package booking

import "github.com/gofiber/fiber/v2"

// Controllers bundles the HTTP surfaces for route registration.
type Controllers struct {
	Auth     *AuthController
	Sessions *SessionController
	Teachers *TeacherController
	Users    *UserController
}

// RegisterRoutes mounts the API. The token gate runs on every request and
// only attaches identity; /api/auth is public, everything else requires an
// authenticated principal.
func RegisterRoutes(app *fiber.App, gate *TokenGate, ctrl Controllers) {
	app.Use(gate.Handler())

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", ctrl.Auth.LoginPost)
	auth.Post("/register", ctrl.Auth.RegisterPost)

	sessions := api.Group("/session", RequireAuthenticated())
	sessions.Get("/", ctrl.Sessions.FindAll)
	sessions.Get("/:id", ctrl.Sessions.FindByID)
	sessions.Post("/", ctrl.Sessions.Create)
	sessions.Put("/:id", ctrl.Sessions.Update)
	sessions.Delete("/:id", ctrl.Sessions.Delete)
	sessions.Post("/:id/participate/:userId", ctrl.Sessions.Participate)
	sessions.Delete("/:id/participate/:userId", ctrl.Sessions.NoLongerParticipate)

	teachers := api.Group("/teacher", RequireAuthenticated())
	teachers.Get("/", ctrl.Teachers.FindAll)
	teachers.Get("/:id", ctrl.Teachers.FindByID)

	users := api.Group("/user", RequireAuthenticated())
	users.Get("/:id", ctrl.Users.FindByID)
	users.Delete("/:id", ctrl.Users.Delete)
}
