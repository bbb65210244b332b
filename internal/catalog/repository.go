package catalog

import (
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Repository is a local interface for catalog repository operations.
// It embeds repository.Catalog to enable mock generation in this package.
type Repository interface {
	repository.Catalog
}
