package catalog

import (
	"fmt"

	"github.com/gosimple/slug"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// resolveSlug fills in.Slug from the event name when it is empty and rejects
// hand-written slugs that would not survive a URL.
func resolveSlug(in *domain.EventInput) error {
	if in.Slug == "" {
		in.Slug = slug.Make(in.Name)
		if in.Slug == "" {
			return fmt.Errorf("%w: "+ErrMsgEmptySlug, domain.ErrValidation, in.Name)
		}
		return nil
	}
	if !slug.IsSlug(in.Slug) {
		return fmt.Errorf("%w: "+ErrMsgInvalidSlug, domain.ErrValidation, in.Slug)
	}
	return nil
}
