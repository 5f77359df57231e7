package profiles

import (
	"strconv"
	"strings"

	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/types"
)

// Select resolves a user choice to a profile. The choice is either the
// menu ordinal ("1", "2") or the profile name, case-insensitively.
// Anything else is an invalid-selection error, fatal before any action
// runs.
func Select(choice string) (*types.Profile, error) {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return nil, errors.New(errors.ErrInvalidSelection, "no profile selected")
	}

	catalog := Catalog()
	if ordinal, err := strconv.Atoi(choice); err == nil {
		for _, p := range catalog {
			if p.Ordinal == ordinal {
				return p, nil
			}
		}
		return nil, errors.Newf(errors.ErrInvalidSelection, "no profile with number %d (valid: 1-%d)", ordinal, len(catalog))
	}

	for _, p := range catalog {
		if strings.EqualFold(p.Name, choice) {
			return p, nil
		}
	}
	return nil, errors.Newf(errors.ErrInvalidSelection, "unknown profile %q", choice)
}

// Names returns the profile names in menu order.
func Names() []string {
	catalog := Catalog()
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		names = append(names, p.Name)
	}
	return names
}
