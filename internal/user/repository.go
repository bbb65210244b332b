package user

import (
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Repository is a local interface for user repository operations.
// It embeds repository.User to enable mock generation in this package.
type Repository interface {
	repository.User
}
