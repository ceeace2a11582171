package booking

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
)

// AuthController owns the login and registration surfaces.
type AuthController struct {
	auther *Auther
	users  *UserService
	logger Logger
}

func NewAuthController(auther *Auther, users *UserService) *AuthController {
	return &AuthController{
		auther: auther,
		users:  users,
		logger: defLogger{},
	}
}

func (a *AuthController) WithLogger(logger Logger) *AuthController {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// MessageResponse is the plain confirmation/failure envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// JwtResponse is the successful login body.
type JwtResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// LoginPost authenticates the email/password pair and returns a bearer
// token. Unknown email and wrong password produce byte-identical responses.
func (a *AuthController) LoginPost(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		a.logger.Debug("login parse payload", "error", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: err.Error()})
	}

	result, err := a.auther.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{Message: "Bad credentials"})
		}
		a.logger.Error("login failed", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	p := result.Principal
	return c.JSON(JwtResponse{
		Token:     result.Token,
		Type:      bearerScheme,
		ID:        p.ID,
		Username:  p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Admin:     p.Admin,
	})
}

// RegisterRequest payload
type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// Validate will run validation rules
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(3, 50), is.Email),
		validation.Field(&r.FirstName, validation.Required, validation.Length(3, 20)),
		validation.Field(&r.LastName, validation.Required, validation.Length(3, 20)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 40)),
	)
}

// RegisterPost creates an account. A duplicate email is a client error with
// the original record untouched.
func (a *AuthController) RegisterPost(c *fiber.Ctx) error {
	payload := new(RegisterRequest)

	if err := c.BodyParser(payload); err != nil {
		a.logger.Debug("register parse payload", "error", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: err.Error()})
	}

	_, err := a.users.Register(c.UserContext(), payload.Email, payload.FirstName, payload.LastName, payload.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Error: Email is already taken!"})
		}
		a.logger.Error("register failed", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(MessageResponse{Message: "User registered successfully!"})
}
