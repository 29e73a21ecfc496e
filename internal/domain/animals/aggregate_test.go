package animals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-finder/internal/ports/petfinder"
)

func withGender(g ...string) []petfinder.AnimalRecord {
	out := make([]petfinder.AnimalRecord, 0, len(g))
	for _, s := range g {
		out = append(out, petfinder.AnimalRecord{Gender: s})
	}
	return out
}

func withCoat(c ...*string) []petfinder.AnimalRecord {
	out := make([]petfinder.AnimalRecord, 0, len(c))
	for _, s := range c {
		out = append(out, petfinder.AnimalRecord{Coat: s})
	}
	return out
}

func TestGenderCounts(t *testing.T) {
	cases := []struct {
		name         string
		in           []petfinder.AnimalRecord
		male, female int
	}{
		{name: "mixed", in: withGender("Male", "male", "Female", "other"), male: 2, female: 2},
		{name: "case_insensitive", in: withGender("MALE", "mAlE"), male: 2, female: 0},
		// todo lo que no es male cuenta como hembra
		{name: "non_male_is_female", in: withGender("", "Unknown", "Female"), male: 0, female: 3},
		{name: "empty", in: nil, male: 0, female: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, f := GenderCounts(tc.in)
			assert.Equal(t, tc.male, m)
			assert.Equal(t, tc.female, f)
			assert.Equal(t, len(tc.in), m+f)
		})
	}
}

func TestCoatCounts_AlignedWithCategories(t *testing.T) {
	cats := []string{"Short", "Medium", "Long"}

	counts, err := CoatCounts(withCoat(str("Short"), str("Short"), str("Medium")), cats)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, counts)

	counts, err = CoatCounts(withCoat(str("Short"), str("Long"), str("Short")), []string{"Short", "Long", "Curly"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, counts)

	counts, err = CoatCounts(nil, cats)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, counts)
}

func TestCoatCounts_UnknownCategory(t *testing.T) {
	_, err := CoatCounts(withCoat(str("Short"), str("Curly")), []string{"Short", "Medium"})
	require.ErrorIs(t, err, ErrUnknownCategory)

	var uce *UnknownCategoryError
	require.ErrorAs(t, err, &uce)
	assert.Equal(t, "Curly", uce.Coat)
	assert.False(t, uce.Missing)
}

func TestCoatCounts_MissingCoat(t *testing.T) {
	_, err := CoatCounts(withCoat(nil), []string{"Short"})

	var uce *UnknownCategoryError
	require.ErrorAs(t, err, &uce)
	assert.True(t, uce.Missing)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
