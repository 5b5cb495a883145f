package repository

import "github.com/avelio/profitab-api/internal/domain/entity"

// UserRepository definiert den Persistenz-Port für User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
