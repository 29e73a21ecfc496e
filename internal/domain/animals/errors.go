package animals

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFilter   = errors.New("invalid search filter")
	ErrUnknownCategory = errors.New("unknown coat category")
	ErrAPISignaled     = errors.New("api signaled error")

	// ErrUpstream envuelve fallas de transporte/auth/parseo de Petfinder o del geocoder.
	ErrUpstream = errors.New("upstream request failed")
)

// UnknownCategoryError: el coat de un animal no está en las categorías del gráfico.
type UnknownCategoryError struct {
	Coat    string
	Missing bool // el animal no trae coat
}

func (e *UnknownCategoryError) Error() string {
	if e.Missing {
		return "unknown coat category: animal has no coat"
	}
	return fmt.Sprintf("unknown coat category: %q", e.Coat)
}

func (e *UnknownCategoryError) Is(target error) bool { return target == ErrUnknownCategory }

// APISignaledError: la búsqueda respondió con un status >= 400 embebido en el body.
type APISignaledError struct {
	Status   int
	Title    string
	Detail   string
	Location string
}

func (e *APISignaledError) Error() string {
	return fmt.Sprintf("api signaled error: status=%d title=%q detail=%q", e.Status, e.Title, e.Detail)
}

func (e *APISignaledError) Is(target error) bool { return target == ErrAPISignaled }

// Message es el texto para el usuario.
func (e *APISignaledError) Message() string {
	return fmt.Sprintf("Unable to find animals for given location: '%s'", e.Location)
}
