package booking

import (
	"errors"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
)

// SessionController exposes session CRUD plus the two enrollment endpoints.
type SessionController struct {
	service *SessionService
	logger  Logger
}

func NewSessionController(service *SessionService) *SessionController {
	return &SessionController{
		service: service,
		logger:  defLogger{},
	}
}

func (s *SessionController) WithLogger(logger Logger) *SessionController {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// SessionPayload is the create/update body.
type SessionPayload struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
	Description string    `json:"description"`
}

// Validate will run validation rules
func (p SessionPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&p.Date, validation.Required),
		validation.Field(&p.TeacherID, validation.Required),
		validation.Field(&p.Description, validation.Required, validation.Length(1, 2500)),
	)
}

// SessionResponse is the wire shape. Participants appear as an ordered list
// of user ids, oldest enrollment first.
type SessionResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
	Description string    `json:"description"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func sessionToResponse(record *Session) SessionResponse {
	return SessionResponse{
		ID:          record.ID,
		Name:        record.Name,
		Date:        record.Date,
		TeacherID:   record.TeacherID,
		Description: record.Description,
		Users:       record.UserIDs(),
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func (s *SessionController) FindAll(c *fiber.Ctx) error {
	records, err := s.service.FindAll(c.UserContext())
	if err != nil {
		s.logger.Error("list sessions", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	out := make([]SessionResponse, 0, len(records))
	for _, record := range records {
		out = append(out, sessionToResponse(record))
	}
	return c.JSON(out)
}

func (s *SessionController) FindByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	record, err := s.service.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		s.logger.Error("get session", "id", id, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(sessionToResponse(record))
}

func (s *SessionController) Create(c *fiber.Ctx) error {
	payload := new(SessionPayload)
	if err := c.BodyParser(payload); err != nil {
		s.logger.Debug("session parse payload", "error", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: err.Error()})
	}

	record, err := s.service.Create(c.UserContext(), &Session{
		Name:        payload.Name,
		Date:        payload.Date,
		TeacherID:   payload.TeacherID,
		Description: payload.Description,
	})
	if err != nil {
		s.logger.Error("create session", "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(sessionToResponse(record))
}

func (s *SessionController) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	payload := new(SessionPayload)
	if err := c.BodyParser(payload); err != nil {
		s.logger.Debug("session parse payload", "error", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: err.Error()})
	}

	record, err := s.service.Update(c.UserContext(), id, &Session{
		Name:        payload.Name,
		Date:        payload.Date,
		TeacherID:   payload.TeacherID,
		Description: payload.Description,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		s.logger.Error("update session", "id", id, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(sessionToResponse(record))
}

func (s *SessionController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := s.service.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		s.logger.Error("delete session", "id", id, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (s *SessionController) Participate(c *fiber.Ctx) error {
	sessionID, err := parseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	userID, err := parseID(c.Params("userId"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := s.service.Participate(c.UserContext(), sessionID, userID); err != nil {
		return s.enrollmentError(c, err, sessionID, userID)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (s *SessionController) NoLongerParticipate(c *fiber.Ctx) error {
	sessionID, err := parseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	userID, err := parseID(c.Params("userId"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := s.service.NoLongerParticipate(c.UserContext(), sessionID, userID); err != nil {
		return s.enrollmentError(c, err, sessionID, userID)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (s *SessionController) enrollmentError(c *fiber.Ctx, err error, sessionID, userID int64) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case IsConflict(err):
		return c.SendStatus(fiber.StatusBadRequest)
	default:
		s.logger.Error("enrollment failed", "session_id", sessionID, "user_id", userID, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}

// parseID turns a path parameter into a numeric id.
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
