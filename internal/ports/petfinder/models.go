package petfinder

import "time"

// Credential es el bearer token del client-credentials grant + cuándo se obtuvo.
type Credential struct {
	AccessToken string
	AcquiredAt  time.Time
}

// AnimalType es el catálogo de valores válidos para una especie.
type AnimalType struct {
	Name    string   `json:"name"`
	Coats   []string `json:"coats"`
	Colors  []string `json:"colors"`
	Genders []string `json:"genders"`
}

// SearchFilter son los criterios de búsqueda.
// Genders/Coats/Colors vacíos => sin filtro. Se envían como tokens separados por coma.
type SearchFilter struct {
	Location string    `json:"location" validate:"required"`
	Distance int       `json:"distance" validate:"gte=1,lte=500"`
	Type     string    `json:"type" validate:"required"`
	Genders  []string  `json:"genders,omitempty" validate:"dive,oneof=Male Female Unknown"`
	Coats    []string  `json:"coats,omitempty" validate:"dive,required"`
	Colors   []string  `json:"colors,omitempty" validate:"dive,required"`
	After    time.Time `json:"after,omitempty"`
	Page     int       `json:"page" validate:"gte=1"`
	Limit    int       `json:"limit" validate:"gte=1,lte=100"`
}

// AnimalRecord es la forma externa (solo lectura). Cualquier grupo anidado puede faltar.
type AnimalRecord struct {
	ID             int      `json:"id"`
	OrganizationID string   `json:"organization_id"`
	URL            string   `json:"url,omitempty"`
	Type           string   `json:"type,omitempty"`
	Species        string   `json:"species,omitempty"`
	Name           string   `json:"name"`
	Age            string   `json:"age"`
	Gender         string   `json:"gender"`
	Size           string   `json:"size"`
	Coat           *string  `json:"coat"`
	Breeds         *Breeds  `json:"breeds"`
	Colors         *Colors  `json:"colors"`
	Contact        *Contact `json:"contact"`
	Status         string   `json:"status,omitempty"`
	Description    *string  `json:"description,omitempty"`

	PublishedAt     *time.Time `json:"published_at,omitempty"`
	StatusChangedAt *time.Time `json:"status_changed_at,omitempty"`
}

type Breeds struct {
	Primary   *string `json:"primary"`
	Secondary *string `json:"secondary"`
	Mixed     bool    `json:"mixed"`
	Unknown   bool    `json:"unknown"`
}

type Colors struct {
	Primary   *string `json:"primary"`
	Secondary *string `json:"secondary"`
	Tertiary  *string `json:"tertiary"`
}

type Contact struct {
	Email   *string  `json:"email"`
	Phone   *string  `json:"phone"`
	Address *Address `json:"address"`
}

type Address struct {
	Address1 *string `json:"address1"`
	Address2 *string `json:"address2"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Postcode *string `json:"postcode"`
	Country  *string `json:"country"`
}

type Pagination struct {
	CountPerPage int `json:"count_per_page"`
	TotalCount   int `json:"total_count"`
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
}

// SearchResponse se devuelve tal cual llega. La API señala errores con Status >= 400
// en el body; el cliente no lo reinterpreta, lo chequea quien llama (ver Failed).
type SearchResponse struct {
	Animals    []AnimalRecord `json:"animals"`
	Pagination *Pagination    `json:"pagination,omitempty"`

	Status int    `json:"status,omitempty"`
	Type   string `json:"type,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Failed indica un error embebido en el body.
func (r SearchResponse) Failed() bool {
	return r.Status >= 400
}
