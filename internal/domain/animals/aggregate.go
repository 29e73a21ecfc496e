package animals

import (
	"strings"

	"pet-finder/internal/ports/petfinder"
)

// GenderCounts cuenta machos y hembras. Solo "male" (sin importar mayúsculas) suma a
// machos; cualquier otro valor, incluido vacío o "Unknown", cae en hembras.
// Es el comportamiento histórico del gráfico y se mantiene.
func GenderCounts(animals []petfinder.AnimalRecord) (male, female int) {
	for _, a := range animals {
		if strings.EqualFold(a.Gender, "male") {
			male++
		} else {
			female++
		}
	}
	return male, female
}

// CoatCounts arma el histograma alineado con categories.
// Un coat fuera de categories (o ausente) es un error, no un cero.
func CoatCounts(animals []petfinder.AnimalRecord, categories []string) ([]int, error) {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}

	freq := make([]int, len(categories))
	for _, a := range animals {
		if a.Coat == nil {
			return nil, &UnknownCategoryError{Missing: true}
		}
		i, ok := index[*a.Coat]
		if !ok {
			return nil, &UnknownCategoryError{Coat: *a.Coat}
		}
		freq[i]++
	}
	return freq, nil
}
