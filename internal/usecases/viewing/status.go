package viewing

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/filter"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
)

// Clock é injetado nos serviços que dependem da data atual
type Clock func() time.Time

// CheckStatus normaliza o filtro de status: vazio vira "All" e qualquer
// valor fora do conjunto do dataset é rejeitado
func CheckStatus[S ~string](view, status string, statuses []S) (string, error) {
	status = strings.TrimSpace(status)
	if status == "" || status == filter.StatusAll {
		return filter.StatusAll, nil
	}

	for _, known := range statuses {
		if status == string(known) {
			return status, nil
		}
	}

	return "", NewViewError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, view,
		fmt.Sprintf("%q não está em %v", status, filter.StatusOptions(statuses)))
}

// UnclassifiedFunc recebe a quantidade de registros fora das categorias declaradas
type UnclassifiedFunc func(view string, region domain.Region, count int)
