package animals

import "pet-finder/internal/ports/petfinder"

// Normalize aplana un registro. Es total: un grupo anidado ausente (breeds, colors,
// contact o contact.address) deja sus columnas en nil; los subcampos nil pasan tal cual.
func Normalize(a petfinder.AnimalRecord) DisplayRow {
	row := DisplayRow{
		ID:             a.ID,
		OrganizationID: a.OrganizationID,
		Name:           a.Name,
		Age:            a.Age,
		Gender:         a.Gender,
		Size:           a.Size,
		Coat:           a.Coat,
	}

	if b := a.Breeds; b != nil {
		row.BreedPrimary = b.Primary
		row.BreedSecondary = b.Secondary
	}
	if c := a.Colors; c != nil {
		row.ColorPrimary = c.Primary
		row.ColorSecondary = c.Secondary
	}
	if addr := address(a); addr != nil {
		row.City = addr.City
		row.State = addr.State
		row.Postcode = addr.Postcode
	}

	return row
}

func NormalizeAll(animals []petfinder.AnimalRecord) []DisplayRow {
	out := make([]DisplayRow, 0, len(animals))
	for _, a := range animals {
		out = append(out, Normalize(a))
	}
	return out
}

func address(a petfinder.AnimalRecord) *petfinder.Address {
	if a.Contact == nil {
		return nil
	}
	return a.Contact.Address
}
