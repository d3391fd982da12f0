package services

import "esantiye/models"

// ResourceRepository defines the data access every resource slice shares
type ResourceRepository interface {
	List(table string, newestFirst bool) ([]models.Row, error)
	Insert(table string, fields map[string]any) (int64, error)
	Count(table string) (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User, passwordHash string) error
}
