package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores del servicio para mapearlos a respuestas HTTP.
type Kind string

const (
	KindInvalidFormat          Kind = "invalid_format"
	KindUnknownBook            Kind = "unknown_book"
	KindUnsupportedTranslation Kind = "unsupported_translation"
	KindUpstreamUnavailable    Kind = "upstream_unavailable"
	KindTimeout                Kind = "timeout"
	KindExtractionFailed       Kind = "extraction_failed"
	KindMalformedPayload       Kind = "malformed_payload"
	KindRateLimited            Kind = "rate_limited"
	KindConfigurationMissing   Kind = "configuration_missing"
	KindInternal               Kind = "internal"
)

// Error es el error estructurado que viaja desde los servicios hasta los handlers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E construye un *Error sin causa subyacente.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap construye un *Error conservando la causa para errors.Is/As.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf devuelve el Kind de un error, o KindInternal si no es un *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
