package scorecard

import (
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Repository is a local interface for scorecard repository operations.
// It embeds repository.Scorecard to enable mock generation in this package.
type Repository interface {
	repository.Scorecard
}
