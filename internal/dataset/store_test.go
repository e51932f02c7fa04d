package dataset_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/dataset/mocks"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func embeddedSnapshot(t *testing.T) *dataset.Snapshot {
	t.Helper()
	snapshot, err := dataset.NewFixtureLoader(dataset.EmbeddedFixtures(), "").Load(context.Background())
	require.NoError(t, err)
	return snapshot
}

func TestStoreBeforeLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := dataset.NewStore(mocks.NewMockLoader(ctrl))

	_, err := store.Leads(domain.RegionOslo)
	assert.ErrorIs(t, err, dataset.ErrNotLoaded)
}

func TestStoreReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	good := embeddedSnapshot(t)
	loadErr := errors.New("fixture quebrada")

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Name().Return("mock").AnyTimes()
	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any()).Return(good, nil),
		loader.EXPECT().Load(gomock.Any()).Return(nil, loadErr),
	)

	var observed []error
	store := dataset.NewStore(loader, func(source string, _ time.Duration, err error) {
		assert.Equal(t, "mock", source)
		observed = append(observed, err)
	})

	require.NoError(t, store.Reload(context.Background()))

	err := store.Reload(context.Background())
	assert.ErrorIs(t, err, loadErr)

	leads, err := store.Leads(domain.RegionOslo)
	require.NoError(t, err)
	assert.Len(t, leads, 4)

	assert.Equal(t, []error{nil, loadErr}, observed)

	status := store.Status()
	assert.Equal(t, "fixtures", status.Source)
	assert.Equal(t, loadErr.Error(), status.LastError)
	assert.Equal(t, 3, status.Counts[domain.KindLeads][domain.RegionBergen])
}

func TestStoreReturnsCopies(t *testing.T) {
	store := dataset.NewStoreFromSnapshot(embeddedSnapshot(t))

	leads, err := store.Leads(domain.RegionOslo)
	require.NoError(t, err)
	leads[0].Company = "Alterado"

	again, err := store.Leads(domain.RegionOslo)
	require.NoError(t, err)
	assert.Equal(t, "Telenor ASA", again[0].Company)

	dash, err := store.Dashboard(domain.RegionOslo)
	require.NoError(t, err)
	dash.LeadSources.Series[0].Values[0] = 999

	dashAgain, err := store.Dashboard(domain.RegionOslo)
	require.NoError(t, err)
	assert.Equal(t, 12, dashAgain.LeadSources.Series[0].Values[0])

	forecast, err := store.Forecast(domain.RegionBergen)
	require.NoError(t, err)
	forecast.Months[0].Closed = 0

	forecastAgain, err := store.Forecast(domain.RegionBergen)
	require.NoError(t, err)
	assert.Equal(t, 2100000.0, forecastAgain.Months[0].Closed)
}

func TestStoreRejectsUnknownRegion(t *testing.T) {
	store := dataset.NewStoreFromSnapshot(embeddedSnapshot(t))

	_, err := store.Renewals(domain.Region("Trondheim"))
	assert.ErrorIs(t, err, domain.ErrUnknownRegion)

	_, err = store.Forecast(domain.Region(""))
	assert.ErrorIs(t, err, domain.ErrUnknownRegion)
}

func TestStoreReloadWithoutLoader(t *testing.T) {
	store := dataset.NewStoreFromSnapshot(embeddedSnapshot(t))
	assert.ErrorIs(t, store.Reload(context.Background()), dataset.ErrNotLoaded)
}

func TestPostgresLoaderRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docs, err := embeddedSnapshot(t).Documents()
	require.NoError(t, err)
	assert.Len(t, docs, len(domain.Regions())*len(domain.DatasetKinds()))

	reader := mocks.NewMockDocumentReader(ctrl)
	reader.EXPECT().ListDocuments(gomock.Any()).Return(docs, nil)

	snapshot, err := dataset.NewPostgresLoader(reader).Load(context.Background())
	require.NoError(t, err)

	assert.Contains(t, snapshot.Source, "postgres@")
	assert.Len(t, snapshot.Renewals[domain.RegionOslo], 5)
	assert.Equal(t, "R003", snapshot.Renewals[domain.RegionOslo][2].ID)
	assert.Equal(t, domain.NewDate(2024, 1, 20), snapshot.Renewals[domain.RegionOslo][2].RenewalDate)
	assert.Len(t, snapshot.Dashboards[domain.RegionBergen].Meetings, 3)
}

func TestPostgresLoaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		docs    []domain.DatasetDocument
		listErr error
		wantErr error
	}{
		{
			name:    "Falha na leitura",
			listErr: errors.New("conexão recusada"),
		},
		{
			name:    "Tabela vazia",
			docs:    []domain.DatasetDocument{},
			wantErr: dataset.ErrMissingRegion,
		},
		{
			name: "Região desconhecida",
			docs: []domain.DatasetDocument{
				{Region: "Stavanger", Kind: domain.KindLeads, Payload: []byte("[]")},
			},
			wantErr: dataset.ErrUnknownRegionKey,
		},
		{
			name: "Payload inválido",
			docs: []domain.DatasetDocument{
				{Region: domain.RegionOslo, Kind: domain.KindLeads, Payload: []byte("{")},
			},
			wantErr: dataset.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := mocks.NewMockDocumentReader(ctrl)
			reader.EXPECT().ListDocuments(gomock.Any()).Return(tt.docs, tt.listErr)

			snapshot, err := dataset.NewPostgresLoader(reader).Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, snapshot)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.listErr != nil {
				assert.ErrorIs(t, err, tt.listErr)
			}
		})
	}
}
