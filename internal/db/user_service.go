package db

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mvcarvalho/clinigo/internal/auth"
	"github.com/mvcarvalho/clinigo/internal/models"
)

// CreateUser adds a login account. Usernames are unique; passwords are
// stored as bcrypt hashes only.
func CreateUser(username, password, accessLevel string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if accessLevel != models.AccessAdmin && accessLevel != models.AccessTherapist {
		return nil, fmt.Errorf("unknown access level %q", accessLevel)
	}

	var existing models.User
	err := DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("username %q: %w", username, ErrDuplicate)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		AccessLevel:  accessLevel,
	}
	if err := DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks credentials and returns the explicit session
// value the rest of the app carries around.
func Authenticate(username, password string) (*auth.Session, error) {
	var user models.User
	err := DB.Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &auth.Session{
		UserID:      user.ID,
		Username:    user.Username,
		AccessLevel: user.AccessLevel,
	}, nil
}

// GetUsers lists accounts ordered by username
func GetUsers() ([]models.User, error) {
	var users []models.User
	err := DB.Order("username ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserPassword replaces one user's password
func UpdateUserPassword(userID uint, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	result := DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", string(hash))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user #%d: %w", userID, ErrNotFound)
	}
	return nil
}

// DeleteUser removes a login account
func DeleteUser(userID uint) error {
	result := DB.Delete(&models.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user #%d: %w", userID, ErrNotFound)
	}
	return nil
}
