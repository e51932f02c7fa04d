package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

var (
	ErrNotLoaded        = errors.New("dataset ainda não carregado")
	ErrMissingRegion    = errors.New("região ausente no dataset")
	ErrUnknownRegionKey = errors.New("região desconhecida no dataset")
	ErrDuplicateID      = errors.New("identificador duplicado")
	ErrMissingID        = errors.New("identificador vazio")
	ErrInvalidStatus    = errors.New("status fora do conjunto permitido")
	ErrMissingDate      = errors.New("data obrigatória ausente")
	ErrInvalidValue     = errors.New("valor inválido")
)

// Issue é um problema de qualidade encontrado em um registro
type Issue struct {
	Kind     domain.DatasetKind `json:"kind"`
	Region   domain.Region      `json:"region,omitempty"`
	RecordID string             `json:"record_id,omitempty"`
	Err      error              `json:"-"`
	Message  string             `json:"message"`
}

func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(string(i.Kind))
	if i.Region != "" {
		b.WriteString("/" + string(i.Region))
	}
	if i.RecordID != "" {
		b.WriteString("/" + i.RecordID)
	}
	b.WriteString(": ")
	b.WriteString(i.Err.Error())
	if i.Message != "" {
		b.WriteString(" (" + i.Message + ")")
	}
	return b.String()
}

// ValidationError agrega todos os problemas de um carregamento
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "dataset inválido: " + e.Issues[0].String()
	}

	lines := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		lines = append(lines, issue.String())
	}
	return fmt.Sprintf("dataset inválido: %d problemas: %s", len(e.Issues), strings.Join(lines, "; "))
}

// Unwrap permite errors.Is contra os erros de cada problema
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Issues))
	for _, issue := range e.Issues {
		errs = append(errs, issue.Err)
	}
	return errs
}

type issues []Issue

func (is *issues) add(kind domain.DatasetKind, region domain.Region, id string, err error, message string) {
	*is = append(*is, Issue{Kind: kind, Region: region, RecordID: id, Err: err, Message: message})
}

func (is issues) err() error {
	if len(is) == 0 {
		return nil
	}
	return &ValidationError{Issues: is}
}
