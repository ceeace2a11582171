package booking

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// TeacherController is the read-only instructor surface.
type TeacherController struct {
	service *TeacherService
	logger  Logger
}

func NewTeacherController(service *TeacherService) *TeacherController {
	return &TeacherController{
		service: service,
		logger:  defLogger{},
	}
}

func (t *TeacherController) WithLogger(logger Logger) *TeacherController {
	if logger != nil {
		t.logger = logger
	}
	return t
}

type TeacherResponse struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func teacherToResponse(record *Teacher) TeacherResponse {
	return TeacherResponse{
		ID:        record.ID,
		LastName:  record.LastName,
		FirstName: record.FirstName,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func (t *TeacherController) FindAll(c *fiber.Ctx) error {
	records, err := t.service.FindAll(c.UserContext())
	if err != nil {
		t.logger.Error("list teachers", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	out := make([]TeacherResponse, 0, len(records))
	for _, record := range records {
		out = append(out, teacherToResponse(record))
	}
	return c.JSON(out)
}

func (t *TeacherController) FindByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	record, err := t.service.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		t.logger.Error("get teacher", "id", id, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(teacherToResponse(record))
}
