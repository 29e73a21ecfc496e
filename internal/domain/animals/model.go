package animals

import (
	"pet-finder/internal/ports/geocoding"
	"pet-finder/internal/ports/petfinder"
)

// Columns es el orden fijo de columnas de la tabla de resultados.
var Columns = []string{
	"Id",
	"Organization Id",
	"Name",
	"Age",
	"Gender",
	"Size",
	"Coat",
	"Breed (primary)",
	"Breed (secondary)",
	"Color (Primary)",
	"Color (Secondary)",
	"City",
	"State",
	"Postcode",
}

// DisplayRow es la proyección plana de un AnimalRecord (mismo orden que Columns).
// Los punteros nil se serializan como null.
type DisplayRow struct {
	ID             int     `json:"Id"`
	OrganizationID string  `json:"Organization Id"`
	Name           string  `json:"Name"`
	Age            string  `json:"Age"`
	Gender         string  `json:"Gender"`
	Size           string  `json:"Size"`
	Coat           *string `json:"Coat"`
	BreedPrimary   *string `json:"Breed (primary)"`
	BreedSecondary *string `json:"Breed (secondary)"`
	ColorPrimary   *string `json:"Color (Primary)"`
	ColorSecondary *string `json:"Color (Secondary)"`
	City           *string `json:"City"`
	State          *string `json:"State"`
	Postcode       *string `json:"Postcode"`
}

// GeoPoint es la posición aproximada de un animal. Lat/Lon nil => el geocoding no encontró
// la dirección y el punto no se dibuja.
type GeoPoint struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Name      string   `json:"name"`
}

func (p GeoPoint) Plottable() bool {
	return p.Latitude != nil && p.Longitude != nil
}

type GenderSplit struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// CoatHistogram: Counts alineado índice a índice con Categories.
type CoatHistogram struct {
	Categories []string `json:"categories"`
	Counts     []int    `json:"counts"`
}

// Dashboard es todo lo que se renderiza a partir de una búsqueda.
type Dashboard struct {
	SearchID string                 `json:"search_id"`
	Filter   petfinder.SearchFilter `json:"filter"`

	// Origin centra el mapa; nil => MapMessage explica por qué no hay mapa.
	Origin     *geocoding.Location `json:"origin"`
	MapMessage string              `json:"map_message"`
	Points     []GeoPoint          `json:"points"`
	Plotted    int                 `json:"plotted"`

	Gender GenderSplit   `json:"gender"`
	Coats  CoatHistogram `json:"coats"`

	Columns    []string              `json:"columns"`
	Rows       []DisplayRow          `json:"rows"`
	Pagination *petfinder.Pagination `json:"pagination,omitempty"`
}
