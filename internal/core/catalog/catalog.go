// Package catalog holds the target companies and roles offered by the
// roadmap, skill and resume forms.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrUnknownCompany is returned when a company is not in the catalog.
	ErrUnknownCompany = errors.New("unknown company")
	// ErrUnknownRole is returned when a role is not offered by a company.
	ErrUnknownRole = errors.New("unknown role")
)

// Entry is one company and the roles it recruits for.
type Entry struct {
	Company string   `yaml:"company" json:"company"`
	Roles   []string `yaml:"roles" json:"roles"`
}

// Catalog is an ordered set of companies. Lookups are case-insensitive.
type Catalog struct {
	entries []Entry
}

// Default returns the built-in company list.
func Default() *Catalog {
	return New([]Entry{
		{Company: "TCS", Roles: []string{"Ninja", "Digital", "Prime", "System Engineer"}},
		{Company: "Accenture", Roles: []string{"Associate Software Engineer", "Advanced ASE", "System and Application Services Associate"}},
		{Company: "Wipro", Roles: []string{"Elite", "Turbo", "Project Engineer"}},
		{Company: "Cognizant", Roles: []string{"GenC", "GenC Elevate", "GenC Next", "Programmer Analyst"}},
		{Company: "Capgemini", Roles: []string{"Analyst", "Senior Analyst", "Software Engineer"}},
		{Company: "HCL", Roles: []string{"Graduate Engineer Trainee", "Software Engineer"}},
		{Company: "Google", Roles: []string{"Software Engineer", "Site Reliability Engineer", "Product Manager"}},
		{Company: "Amazon", Roles: []string{"Software Development Engineer", "Cloud Support Associate", "Programmer Analyst"}},
		{Company: "Microsoft", Roles: []string{"Software Engineer", "Support Engineer", "Program Manager"}},
	})
}

// New builds a catalog from entries. The entries are copied.
func New(entries []Entry) *Catalog {
	c := &Catalog{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		c.entries[i] = Entry{Company: e.Company, Roles: slices.Clone(e.Roles)}
	}
	return c
}

// Entries returns a copy of the catalog entries.
func (c *Catalog) Entries() []Entry {
	return New(c.entries).entries
}

// Companies returns company names in catalog order.
func (c *Catalog) Companies() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Company
	}
	return names
}

// Roles returns the roles offered by company, or nil if it is unknown.
func (c *Catalog) Roles(company string) []string {
	e, ok := c.find(company)
	if !ok {
		return nil
	}
	return slices.Clone(e.Roles)
}

// DefaultRole returns the first role of company, or "" if there is none.
func (c *Catalog) DefaultRole(company string) string {
	e, ok := c.find(company)
	if !ok || len(e.Roles) == 0 {
		return ""
	}
	return e.Roles[0]
}

// Contains reports whether company offers role. Matching ignores case.
func (c *Catalog) Contains(company, role string) bool {
	_, _, err := c.Resolve(company, role)
	return err == nil && strings.TrimSpace(role) != ""
}

// Resolve returns the canonical spelling of company and role. An empty role
// resolves to the company's default role.
func (c *Catalog) Resolve(company, role string) (string, string, error) {
	e, ok := c.find(company)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownCompany, company)
	}

	if strings.TrimSpace(role) == "" {
		if len(e.Roles) == 0 {
			return "", "", fmt.Errorf("%w: %s has no roles", ErrUnknownRole, e.Company)
		}
		return e.Company, e.Roles[0], nil
	}

	for _, r := range e.Roles {
		if strings.EqualFold(r, strings.TrimSpace(role)) {
			return e.Company, r, nil
		}
	}

	return "", "", fmt.Errorf("%w: %q is not offered by %s", ErrUnknownRole, role, e.Company)
}

func (c *Catalog) find(company string) (Entry, bool) {
	company = strings.TrimSpace(company)
	for _, e := range c.entries {
		if strings.EqualFold(e.Company, company) {
			return e, true
		}
	}
	return Entry{}, false
}
