package fs

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Expander = (*Expander)(nil)

// Expander materializes fan-out rules using filepath.Glob. The discovered
// file set depends on what the generating prerequisite most recently
// produced, so expansion must happen at walk time, after that prerequisite
// is satisfied.
type Expander struct{}

// NewExpander creates a new Expander.
func NewExpander() *Expander {
	return &Expander{}
}

// Expand returns one synthetic decompress target per file matching
// *<suffix> under the rule's directory, as the filesystem stands right now.
func (e *Expander) Expand(target *domain.Target) ([]domain.Target, error) {
	if !target.IsFanOut() {
		return nil, zerr.With(domain.ErrExpandFailed, "target", target.Name.String())
	}

	pattern := filepath.Join(target.Action.Dir, "*"+target.Action.Suffix)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		globErr := zerr.Wrap(err, domain.ErrExpandFailed.Error())
		return nil, zerr.With(globErr, "pattern", pattern)
	}
	sort.Strings(matches)

	expanded := make([]domain.Target, 0, len(matches))
	for _, match := range matches {
		out := strings.TrimSuffix(match, target.Action.Suffix)
		expanded = append(expanded, domain.Target{
			Name:    domain.NewInternedString(target.Name.String() + ":" + filepath.Base(match)),
			Outputs: []domain.InternedString{domain.NewInternedString(out)},
			Action: domain.Action{
				Kind: domain.ActionDecompress,
				Path: match,
			},
		})
	}

	return expanded, nil
}
