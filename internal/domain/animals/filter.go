package animals

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"pet-finder/internal/ports/petfinder"
)

const (
	DefaultType         = "Cat"
	DefaultLocation     = "90210"
	DefaultDistance     = 20
	DefaultLookbackDays = 7
)

var validate = validator.New()

// Query es lo que elige el usuario en el dashboard. Los ceros se completan con defaults.
type Query struct {
	Type     string
	Location string
	Distance int

	// Male/Female son toggles; nil => seleccionado.
	Male   *bool
	Female *bool

	// Coats vacío => todos los del catálogo de la especie.
	Coats  []string
	Colors []string

	// After: "YYYY-MM-DD" o "YYYY-MM-DD HH:MM:SS". Vacío => hoy - 7 días.
	After string

	Page  int
	Limit int
}

// GenderTokens traduce los toggles al parámetro gender.
// Ninguno seleccionado => sin filtro.
func GenderTokens(male, female bool) []string {
	switch {
	case male && female:
		return []string{"Male", "Female"}
	case male:
		return []string{"Male"}
	case female:
		return []string{"Female"}
	default:
		return nil
	}
}

var afterLayouts = []string{
	time.DateTime,
	time.DateOnly,
	time.RFC3339,
}

// ParseAfter interpreta la fecha en hora local y descarta fracciones de segundo.
func ParseAfter(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range afterLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.Truncate(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: after %q: expected YYYY-MM-DD or YYYY-MM-DD HH:MM:SS", ErrInvalidFilter, s)
}

// DefaultAfter es la medianoche local de hace DefaultLookbackDays días. Solo fecha:
// la clave de cache de la búsqueda queda estable todo el día.
func DefaultAfter(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-DefaultLookbackDays, 0, 0, 0, 0, now.Location())
}

// BuildFilter completa defaults y valida. catalogCoats se usa cuando q.Coats está vacío.
func BuildFilter(q Query, catalogCoats []string, now time.Time, pageLimit int) (petfinder.SearchFilter, error) {
	f := petfinder.SearchFilter{
		Location: strings.TrimSpace(q.Location),
		Distance: q.Distance,
		Type:     strings.TrimSpace(q.Type),
		Genders:  GenderTokens(isOn(q.Male), isOn(q.Female)),
		Coats:    clean(q.Coats),
		Colors:   clean(q.Colors),
		Page:     q.Page,
		Limit:    q.Limit,
	}

	if f.Location == "" {
		f.Location = DefaultLocation
	}
	if f.Distance == 0 {
		f.Distance = DefaultDistance
	}
	if f.Type == "" {
		f.Type = DefaultType
	}
	if len(f.Coats) == 0 {
		f.Coats = clean(catalogCoats)
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = pageLimit
	}

	if strings.TrimSpace(q.After) == "" {
		f.After = DefaultAfter(now)
	} else {
		t, err := ParseAfter(q.After, now.Location())
		if err != nil {
			return petfinder.SearchFilter{}, err
		}
		f.After = t
	}

	if err := ValidateFilter(f); err != nil {
		return petfinder.SearchFilter{}, err
	}
	return f, nil
}

func ValidateFilter(f petfinder.SearchFilter) error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	return nil
}

func isOn(b *bool) bool {
	return b == nil || *b
}

func clean(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
