package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Region identifica a filial comercial cujos dados estão sendo exibidos
type Region string

const (
	RegionOslo   Region = "Oslo"
	RegionBergen Region = "Bergen"
)

var ErrUnknownRegion = errors.New("região desconhecida")

var regions = []Region{RegionOslo, RegionBergen}

// Regions retorna todas as regiões conhecidas, na ordem de exibição
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// ParseRegion converte um texto em Region, ignorando maiúsculas/minúsculas
func ParseRegion(s string) (Region, error) {
	candidate := strings.TrimSpace(s)
	for _, r := range regions {
		if strings.EqualFold(string(r), candidate) {
			return r, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

func (r Region) Valid() bool {
	for _, known := range regions {
		if r == known {
			return true
		}
	}
	return false
}

// Next retorna a próxima região da lista, voltando ao início no final
func (r Region) Next() Region {
	for i, known := range regions {
		if r == known {
			return regions[(i+1)%len(regions)]
		}
	}
	return regions[0]
}

func (r Region) String() string {
	return string(r)
}
