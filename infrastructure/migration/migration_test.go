package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	datasetmocks "github.com/vfg2006/crm-tracker-api/internal/dataset/mocks"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestStatementsAreIdempotent(t *testing.T) {
	for _, stmt := range Statements() {
		assert.Contains(t, stmt, "IF NOT EXISTS")
	}
}

func TestSeed(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*datasetmocks.MockLoader, *mocks.MockDatasetRepository)
		wantErr  bool
		validate func(*testing.T, *SeedResult)
	}{
		{
			name: "Grava um documento por região e conjunto",
			setup: func(loader *datasetmocks.MockLoader, repo *mocks.MockDatasetRepository) {
				loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (*dataset.Snapshot, error) {
					return dataset.NewFixtureLoader(dataset.EmbeddedFixtures(), "").Load(ctx)
				})
				repo.EXPECT().Upsert(gomock.Any(), gomock.Len(12)).DoAndReturn(
					func(_ context.Context, docs []domain.DatasetDocument) error {
						for _, doc := range docs {
							assert.True(t, doc.Region.Valid())
							assert.NotEmpty(t, doc.Payload)
						}
						return nil
					})
			},
			validate: func(t *testing.T, result *SeedResult) {
				assert.Equal(t, 12, result.Documents)
				assert.Equal(t, "fixtures", result.Source)
			},
		},
		{
			name: "Dataset inválido não chega ao banco",
			setup: func(loader *datasetmocks.MockLoader, repo *mocks.MockDatasetRepository) {
				loader.EXPECT().Name().Return("fixtures")
				loader.EXPECT().Load(gomock.Any()).Return(nil, dataset.ErrMissingRegion)
			},
			wantErr: true,
		},
		{
			name: "Erro do banco",
			setup: func(loader *datasetmocks.MockLoader, repo *mocks.MockDatasetRepository) {
				loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (*dataset.Snapshot, error) {
					return dataset.NewFixtureLoader(dataset.EmbeddedFixtures(), "").Load(ctx)
				})
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			loader := datasetmocks.NewMockLoader(ctrl)
			repo := mocks.NewMockDatasetRepository(ctrl)
			tt.setup(loader, repo)

			result, err := Seed(context.Background(), loader, repo)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}
