package booking

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// UserController exposes account lookup and owner-only account deletion.
type UserController struct {
	service *UserService
	logger  Logger
}

func NewUserController(service *UserService) *UserController {
	return &UserController{
		service: service,
		logger:  defLogger{},
	}
}

func (u *UserController) WithLogger(logger Logger) *UserController {
	if logger != nil {
		u.logger = logger
	}
	return u
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func userToResponse(record *User) UserResponse {
	return UserResponse{
		ID:        record.ID,
		Email:     record.Email,
		LastName:  record.LastName,
		FirstName: record.FirstName,
		Admin:     record.Admin,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func (u *UserController) FindByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	record, err := u.service.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		u.logger.Error("get user", "id", id, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(userToResponse(record))
}

// Delete removes an account. Only the owner may do it; any other caller,
// admin or not, gets a 403.
func (u *UserController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	principal, ok := CurrentPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{Message: "Unauthorized"})
	}

	if err := u.service.Delete(c.UserContext(), principal, id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.SendStatus(fiber.StatusNotFound)
		case errors.Is(err, ErrNotOwner):
			return c.SendStatus(fiber.StatusForbidden)
		default:
			u.logger.Error("delete user", "id", id, "error", err)
			return c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	return c.SendStatus(fiber.StatusOK)
}
