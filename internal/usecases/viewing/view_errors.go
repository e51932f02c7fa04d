// Package viewing reúne o que é comum aos serviços de visualização.
package viewing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
)

var (
	ErrInvalidStatus = errors.New("status inválido")
	ErrUnavailable   = errors.New("dados indisponíveis")
)

// ViewError é um erro com contexto adicional para as visualizações
type ViewError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	View    string // Visualização que falhou
	Details string // Detalhes adicionais
}

func (e *ViewError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.View, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.View, e.Err.Error())
}

func (e *ViewError) Unwrap() error {
	return e.Err
}

// APICode expõe o código para a camada HTTP
func (e *ViewError) APICode() string {
	return e.Code
}

func NewViewError(err error, code, view, details string) *ViewError {
	return &ViewError{
		Err:     err,
		Code:    code,
		View:    view,
		Details: details,
	}
}

// ReaderError traduz um erro do dataset.Reader para o código de API correspondente
func ReaderError(view string, region domain.Region, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownRegion):
		return NewViewError(domain.ErrUnknownRegion, apiErrors.ErrUnknownRegion, view,
			fmt.Sprintf("região %q não existe", region))
	case errors.Is(err, dataset.ErrNotLoaded):
		return NewViewError(ErrUnavailable, apiErrors.ErrDatasetNotLoaded, view, "dataset ainda não carregado")
	default:
		return NewViewError(err, apiErrors.ErrInternalServer, view, "falha ao ler o dataset")
	}
}
