package services

import (
	"errors"

	"github.com/xiao1992/WellnessTracker/models"
	"github.com/xiao1992/WellnessTracker/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(email, password, firstName, lastName string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, invalidField("email", "already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr(err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

// Authenticate checks the credentials and returns a signed token. The
// same error comes back for an unknown email and a wrong password.
func (s *AuthService) Authenticate(email, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errors.New("invalid email or password")
		}
		return "", nil, storeErr(err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}
