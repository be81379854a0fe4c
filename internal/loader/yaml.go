// Package loader reads fund seed files. Each seeded fund is submitted through
// the same validation path as a form entry, so a seed file cannot introduce a
// fund the form would reject.
package loader

import (
	"fmt"
	"os"
	"strings"

	"fundgraph/internal/domain"

	"gopkg.in/yaml.v3"
)

// SeedFile represents the YAML file structure
type SeedFile struct {
	Version string     `yaml:"version"`
	Funds   []SeedFund `yaml:"funds"`
}

// SeedFund represents one fund entry as typed on the form
type SeedFund struct {
	Name    string `yaml:"name"`
	Manager string `yaml:"manager"`
	Year    string `yaml:"year"`
	Type    string `yaml:"type"`
	Status  string `yaml:"status,omitempty"`
}

// LoadFile reads a seed file from disk
func LoadFile(path string) ([]domain.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML into candidates in file order
func Parse(data []byte) ([]domain.Candidate, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(seed.Funds))
	for i, f := range seed.Funds {
		open, err := parseStatus(f.Status)
		if err != nil {
			return nil, fmt.Errorf("fund %d (%s): %w", i+1, f.Name, err)
		}
		candidates = append(candidates, domain.Candidate{
			Name:    f.Name,
			Manager: f.Manager,
			Year:    domain.YearInput(f.Year),
			Type:    f.Type,
			Open:    open,
		})
	}
	return candidates, nil
}

// parseStatus accepts the labels shown on the form. Empty means open.
func parseStatus(s string) (*bool, error) {
	var open bool
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "open":
		open = true
	case "closed":
		open = false
	default:
		return nil, fmt.Errorf("unknown status %q, must be Open or Closed", s)
	}
	return &open, nil
}

// FundAdder accepts fund submissions
type FundAdder interface {
	AddFund(c domain.Candidate) (domain.Fund, error)
}

// SeedResult reports how a seed file was applied
type SeedResult struct {
	Accepted []domain.Fund
	Rejected []error
}

// Seed submits candidates in order. A rejected candidate does not stop the
// remaining ones from being submitted.
func Seed(adder FundAdder, candidates []domain.Candidate) SeedResult {
	var result SeedResult
	for i, c := range candidates {
		fund, err := adder.AddFund(c)
		if err != nil {
			result.Rejected = append(result.Rejected, fmt.Errorf("fund %d (%s): %w", i+1, c.Name, err))
			continue
		}
		result.Accepted = append(result.Accepted, fund)
	}
	return result
}
