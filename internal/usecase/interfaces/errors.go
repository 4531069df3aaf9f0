package interfaces

import "github.com/cockroachdb/errors"

// ErrDuplicateKey is returned by repositories when a unique attribute
// (CPF, CPF/CNPJ, numero_orcamento) is already taken.
var ErrDuplicateKey = errors.New("duplicate key")
