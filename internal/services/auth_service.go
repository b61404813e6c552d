package services

import "github.com/junipershade/petal/internal/models"

type AuthUserStore interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserStore
}

func NewAuthService(users AuthUserStore) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) RegistrationEmailExists(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(email)
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
