package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
)

// Error é um erro de comando com código legível por máquina,
// o mesmo catálogo usado pela API
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) APICode() string { return e.Code }

func newError(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

type codedError interface {
	error
	APICode() string
}

// codeFor extrai o código do erro; erros sem código viram SRV_001
func codeFor(err error) string {
	var coded codedError
	if errors.As(err, &coded) {
		return coded.APICode()
	}

	var invalid *dataset.ValidationError
	if errors.As(err, &invalid) {
		return apiErrors.ErrDatasetInvalid
	}

	if errors.Is(err, dataset.ErrNotLoaded) {
		return apiErrors.ErrDatasetNotLoaded
	}

	return apiErrors.ErrInternalServer
}

// exitCode: 1 para erros de uso ou de dados, 2 para falhas internas
func exitCode(code string) int {
	if strings.HasPrefix(code, "SRV_") {
		return 2
	}
	return 1
}
