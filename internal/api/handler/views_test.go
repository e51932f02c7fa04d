package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/renewals/mocks"
	"go.uber.org/mock/gomock"
)

type fakeDigests map[domain.Region]*domain.RenewalDigest

func (f fakeDigests) LastDigest(region domain.Region) (*domain.RenewalDigest, bool) {
	digest, ok := f[region]
	return digest, ok
}

func getDigest(service *mocks.MockRenewalService, digests DigestSource, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	GetRenewalDigest(service, digests, fixedRegion(domain.RegionOslo)).ServeHTTP(rec, req)
	return rec
}

func TestGetRenewalDigest(t *testing.T) {
	scheduled := &domain.RenewalDigest{Region: domain.RegionOslo, ReferenceDate: domain.NewDate(2024, 1, 1)}
	computed := &domain.RenewalDigest{Region: domain.RegionOslo, ReferenceDate: domain.NewDate(2024, 1, 18)}

	tests := []struct {
		name    string
		target  string
		digests DigestSource
		setup   func(service *mocks.MockRenewalService)
		want    domain.Date
	}{
		{
			name:   "Sem data usa o relógio do serviço",
			target: "/v1/renewals/digest",
			setup: func(service *mocks.MockRenewalService) {
				service.EXPECT().Digest(domain.RegionOslo, time.Time{}).Return(computed, nil)
			},
			want: computed.ReferenceDate,
		},
		{
			name:    "Resumo agendado disponível",
			target:  "/v1/renewals/digest",
			digests: fakeDigests{domain.RegionOslo: scheduled},
			setup:   func(*mocks.MockRenewalService) {},
			want:    scheduled.ReferenceDate,
		},
		{
			name:    "Data explícita ignora o resumo agendado",
			target:  "/v1/renewals/digest?now=2024-01-18",
			digests: fakeDigests{domain.RegionOslo: scheduled},
			setup: func(service *mocks.MockRenewalService) {
				service.EXPECT().
					Digest(domain.RegionOslo, gomock.Not(time.Time{})).
					Return(computed, nil)
			},
			want: computed.ReferenceDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockRenewalService(ctrl)
			tt.setup(service)

			rec := getDigest(service, tt.digests, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var digest domain.RenewalDigest
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &digest))
			assert.Equal(t, tt.want, digest.ReferenceDate)
		})
	}
}
