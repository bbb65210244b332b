package stats

import (
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Repository is a local interface for stats repository operations.
// It embeds repository.Stats to enable mock generation in this package.
type Repository interface {
	repository.Stats
}
