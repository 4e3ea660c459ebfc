package tablesdomain

import (
	"errors"
	"fmt"
)

// Categorias de falha de leitura/escrita no backend de tabelas
var (
	ErrNetworkFailure    = errors.New("network failure")
	ErrHTTPStatus        = errors.New("http error")
	ErrMalformedResponse = errors.New("malformed response")
)

// HTTPError representa uma resposta com status fora da faixa 2xx. O corpo é ignorado na decisão.
type HTTPError struct {
	StatusCode int
	Status     string
	Method     string
	Path       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: status %s", e.Method, e.Path, e.Status)
}

func (e *HTTPError) Unwrap() error {
	return ErrHTTPStatus
}

// Malformed marca err como resposta malformada
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
