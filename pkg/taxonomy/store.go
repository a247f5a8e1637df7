package taxonomy

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/helmcode/skillready/pkg/model"
)

// DefaultKey names the mandatory fallback profile.
const DefaultKey = "default"

type Requirement struct {
	Name       string           `json:"name" yaml:"name"`
	Importance model.Importance `json:"importance" yaml:"importance"`
	Category   model.Category   `json:"category" yaml:"category"`
}

type RoleProfile struct {
	Key          string                 `json:"key" yaml:"key"`
	Requirements []Requirement          `json:"requirements" yaml:"requirements"`
	NotToLearn   []string               `json:"not_to_learn,omitempty" yaml:"not_to_learn,omitempty"`
	Alternative  *model.AlternativeRole `json:"alternative,omitempty" yaml:"alternative,omitempty"`
}

// ValidationError reports a malformed role profile.
type ValidationError struct {
	Role    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("invalid taxonomy: %s", e.Message)
	}
	return fmt.Sprintf("invalid taxonomy: role %q: %s", e.Role, e.Message)
}

// Store resolves role text to a profile. It is immutable once built, so a
// single Store may be shared between goroutines.
type Store struct {
	known []RoleProfile
	byKey map[string]int
	def   RoleProfile
}

var builtin = mustNew(builtinProfiles)

// Builtin returns the store backed by the compiled-in role tables.
func Builtin() *Store {
	return builtin
}

func mustNew(profiles []RoleProfile) *Store {
	s, err := New(profiles)
	if err != nil {
		panic(err)
	}
	return s
}

// New validates profiles and builds a store from them. Declaration order is
// kept; it decides which key wins when role text contains several.
func New(profiles []RoleProfile) (*Store, error) {
	s := &Store{byKey: make(map[string]int)}
	seen := make(map[string]bool)
	hasDefault := false

	for _, p := range profiles {
		p = cloneProfile(p)
		p.Key = strings.ToLower(strings.TrimSpace(p.Key))
		if err := validateProfile(p); err != nil {
			return nil, err
		}
		if seen[p.Key] {
			return nil, &ValidationError{Role: p.Key, Message: "duplicate role key"}
		}
		seen[p.Key] = true

		if p.Key == DefaultKey {
			s.def = p
			hasDefault = true
			continue
		}
		s.byKey[p.Key] = len(s.known)
		s.known = append(s.known, p)
	}

	if !hasDefault {
		return nil, &ValidationError{Message: fmt.Sprintf("missing %q profile", DefaultKey)}
	}
	// every role falls back to these two entries
	if len(s.def.NotToLearn) == 0 {
		return nil, &ValidationError{Role: DefaultKey, Message: "not_to_learn is empty"}
	}
	if s.def.Alternative == nil {
		return nil, &ValidationError{Role: DefaultKey, Message: "alternative is missing"}
	}
	return s, nil
}

func validateProfile(p RoleProfile) error {
	if p.Key == "" {
		return &ValidationError{Message: "role key is empty"}
	}
	if len(p.Requirements) == 0 {
		return &ValidationError{Role: p.Key, Message: "no requirements"}
	}
	for i, r := range p.Requirements {
		if r.Name == "" {
			return &ValidationError{Role: p.Key, Message: fmt.Sprintf("requirement %d: empty name", i)}
		}
		first := []rune(r.Name)[0]
		if first == '/' || unicode.IsSpace(first) {
			return &ValidationError{Role: p.Key, Message: fmt.Sprintf("requirement %d: name %q must start with a word", i, r.Name)}
		}
		if !r.Importance.Valid() {
			return &ValidationError{Role: p.Key, Message: fmt.Sprintf("requirement %d: unknown importance %q", i, r.Importance)}
		}
		if !r.Category.Valid() {
			return &ValidationError{Role: p.Key, Message: fmt.Sprintf("requirement %d: unknown category %q", i, r.Category)}
		}
	}
	if p.Alternative != nil && strings.TrimSpace(p.Alternative.Role) == "" {
		return &ValidationError{Role: p.Key, Message: "alternative role is empty"}
	}
	return nil
}

// Lookup returns the first known profile whose key appears in roleText,
// ignoring case, or the default profile when none does.
func (s *Store) Lookup(roleText string) RoleProfile {
	lower := strings.ToLower(roleText)
	for _, p := range s.known {
		if strings.Contains(lower, p.Key) {
			return cloneProfile(p)
		}
	}
	return cloneProfile(s.def)
}

// NotToLearn returns the avoid-list for roleKey, falling back to the default entry.
func (s *Store) NotToLearn(roleKey string) []string {
	if p, ok := s.profile(roleKey); ok && len(p.NotToLearn) > 0 {
		return cloneStrings(p.NotToLearn)
	}
	return cloneStrings(s.def.NotToLearn)
}

// Alternative returns the suggested fallback role for roleKey, falling back to
// the default entry.
func (s *Store) Alternative(roleKey string) model.AlternativeRole {
	if p, ok := s.profile(roleKey); ok && p.Alternative != nil {
		return *p.Alternative
	}
	return *s.def.Alternative
}

// Roles lists the known profiles in declaration order, default last.
func (s *Store) Roles() []RoleProfile {
	out := make([]RoleProfile, 0, len(s.known)+1)
	for _, p := range s.known {
		out = append(out, cloneProfile(p))
	}
	return append(out, cloneProfile(s.def))
}

func (s *Store) profile(key string) (RoleProfile, bool) {
	key = strings.ToLower(key)
	if key == DefaultKey {
		return s.def, true
	}
	i, ok := s.byKey[key]
	if !ok {
		return RoleProfile{}, false
	}
	return s.known[i], true
}

func cloneProfile(p RoleProfile) RoleProfile {
	out := p
	out.Requirements = append([]Requirement(nil), p.Requirements...)
	out.NotToLearn = cloneStrings(p.NotToLearn)
	if p.Alternative != nil {
		alt := *p.Alternative
		out.Alternative = &alt
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
