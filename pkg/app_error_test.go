package pkg

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	simple := NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	assert.Equal(t, HTTPError{Error: "Orçamento não encontrado", Code: "ORCAMENTO_NOT_FOUND"}, simple.ToHTTPError())
	assert.Equal(t, "ORCAMENTO_NOT_FOUND: Orçamento não encontrado", simple.Error())

	cause := errors.New("connection refused")
	internal := NewDomainError("INTERNAL_ERROR", "An internal error occurred", errors.Wrap(cause, "get orcamento"), http.StatusInternalServerError)
	assert.Equal(t, "get orcamento: connection refused", internal.ToHTTPError().Error)
	assert.True(t, errors.Is(internal, cause))
}
