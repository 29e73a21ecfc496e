package petfinder

import "context"

// AnimalSource es lo que el dominio necesita de la API de refugios.
type AnimalSource interface {
	GetAnimalType(ctx context.Context, species string) (AnimalType, error)
	SearchAnimals(ctx context.Context, filter SearchFilter) (SearchResponse, error)
}
