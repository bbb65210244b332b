package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// sortOrganizations orders promotions by name the way a reader expects,
// ignoring case and diacritics, with Cyrillic and Latin names mixed freely.
func sortOrganizations(orgs []domain.Organization) {
	c := collate.New(language.Russian, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(orgs, func(i, j int) bool {
		return c.CompareString(orgs[i].Name, orgs[j].Name) < 0
	})
}
