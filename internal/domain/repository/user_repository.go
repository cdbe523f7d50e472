package repository

import "github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	// FindByUsername alias semántico para uso en auth.
	FindByUsername(username string) (*entity.User, error)
}
