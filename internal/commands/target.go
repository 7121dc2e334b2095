package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/placementpal/internal/core/catalog"
	"github.com/colonyops/placementpal/internal/core/styles"
)

// errAborted signals that the user dismissed an interactive form.
var errAborted = errors.New("aborted")

// target is the company and role a command is aimed at.
type target struct {
	company string
	role    string
}

// resolve canonicalizes t against the catalog. When the company is missing and
// interactive is set, a form asks for company and role.
func (t *target) resolve(cat *catalog.Catalog, interactive bool) error {
	if t.company == "" {
		if !interactive {
			return fmt.Errorf("--company is required (one of %v)", cat.Companies())
		}
		if err := t.runForm(cat); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return errAborted
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	company, role, err := cat.Resolve(t.company, t.role)
	if err != nil {
		return err
	}
	t.company, t.role = company, role
	return nil
}

func (t *target) runForm(cat *catalog.Catalog) error {
	companies := cat.Companies()
	if len(companies) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	t.company = companies[0]

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Company").
				Options(huh.NewOptions(companies...)...).
				Value(&t.company),
			huh.NewSelect[string]().
				Title("Role").
				OptionsFunc(func() []huh.Option[string] {
					return huh.NewOptions(cat.Roles(t.company)...)
				}, &t.company).
				Value(&t.role),
		),
	).WithTheme(styles.FormTheme()).Run()
}
