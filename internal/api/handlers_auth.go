package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/junipershade/petal/internal/activity"
	"github.com/junipershade/petal/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type registerInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Age              *int   `json:"age"`
	PCOS             bool   `json:"pcos"`
	Thyroid          bool   `json:"thyroid"`
	Anemia           bool   `json:"anemia"`
	Diabetes         bool   `json:"diabetes"`
	EmergencyContact string `json:"emergency_contact"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	if input.Name == "" || input.Email == "" || len(input.Password) < 8 {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	exists, err := handler.authService.RegistrationEmailExists(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Name:             input.Name,
		Email:            input.Email,
		PasswordHash:     string(passwordHash),
		Age:              input.Age,
		HasPCOS:          input.PCOS,
		HasThyroid:       input.Thyroid,
		HasAnemia:        input.Anemia,
		HasDiabetes:      input.Diabetes,
		EmergencyContact: strings.TrimSpace(input.EmergencyContact),
		CreatedAt:        time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already registered")
	}

	handler.activity.Log(activity.NewEvent(activity.ActionSignup, user.ID, user.Email, user.Name, c.IP()))

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "user_id": user.ID})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.FindByNormalizedEmail(normalizeEmail(input.Email))
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	handler.activity.Log(activity.NewEvent(activity.ActionLogin, user.ID, user.Email, user.Name, c.IP()))

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"ok": true, "user_id": user.ID})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	if user, ok := currentUser(c); ok {
		handler.activity.Log(activity.NewEvent(activity.ActionLogout, user.ID, user.Email, user.Name, c.IP()))
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
