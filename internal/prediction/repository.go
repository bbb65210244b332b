package prediction

import (
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Repository is a local interface for prediction repository operations.
// It embeds repository.Prediction to enable mock generation in this package.
type Repository interface {
	repository.Prediction
}
