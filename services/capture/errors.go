package capture

import "errors"

var (
	// ErrMissingProfessional means the page was opened without the "p" parameter.
	ErrMissingProfessional = errors.New("código inválido: falta ID del profesional")
	// ErrMissingRecord means a survey arrived without a valid capture token or
	// for an event that no longer exists.
	ErrMissingRecord = errors.New("no se encontró el registro del masaje")
)
