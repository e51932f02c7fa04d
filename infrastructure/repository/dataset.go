package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

//go:generate mockgen -source=dataset.go -destination=mocks/dataset_mock.go -package=mocks

const datasetsTable = "crm_datasets"

var ErrDocumentNotFound = errors.New("documento não encontrado")

// KindInfo resume um documento persistido sem o payload
type KindInfo struct {
	Region    domain.Region      `json:"region"`
	Kind      domain.DatasetKind `json:"kind"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type DatasetRepository interface {
	Get(ctx context.Context, region domain.Region, kind domain.DatasetKind) (*domain.DatasetDocument, error)
	ListKinds(ctx context.Context) ([]KindInfo, error)
	ListDocuments(ctx context.Context) ([]domain.DatasetDocument, error)
	Upsert(ctx context.Context, docs []domain.DatasetDocument) error
}

type datasetRepository struct {
	conn postgres.Conn
}

func NewDatasetRepository(conn postgres.Conn) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

func (r *datasetRepository) Get(ctx context.Context, region domain.Region, kind domain.DatasetKind) (*domain.DatasetDocument, error) {
	query, args, err := squirrel.
		Select("region", "kind", "payload", "updated_at").
		From(datasetsTable).
		Where(squirrel.Eq{"region": string(region), "kind": string(kind)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	var doc domain.DatasetDocument
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&doc.Region, &doc.Kind, &doc.Payload, &doc.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar documento %s/%s", region, kind)
	}

	return &doc, nil
}

func (r *datasetRepository) ListKinds(ctx context.Context) ([]KindInfo, error) {
	query, args, err := squirrel.
		Select("region", "kind", "updated_at").
		From(datasetsTable).
		OrderBy("region ASC", "kind ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar documentos")
	}
	defer rows.Close()

	var kinds []KindInfo
	for rows.Next() {
		var info KindInfo
		if err := rows.Scan(&info.Region, &info.Kind, &info.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "erro ao processar resultado")
		}
		kinds = append(kinds, info)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return kinds, nil
}

func (r *datasetRepository) ListDocuments(ctx context.Context) ([]domain.DatasetDocument, error) {
	query, args, err := squirrel.
		Select("region", "kind", "payload", "updated_at").
		From(datasetsTable).
		OrderBy("region ASC", "kind ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar documentos")
	}
	defer rows.Close()

	var docs []domain.DatasetDocument
	for rows.Next() {
		var doc domain.DatasetDocument
		if err := rows.Scan(&doc.Region, &doc.Kind, &doc.Payload, &doc.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "erro ao processar resultado")
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return docs, nil
}

// Upsert grava todos os documentos em uma única transação
func (r *datasetRepository) Upsert(ctx context.Context, docs []domain.DatasetDocument) error {
	if len(docs) == 0 {
		return nil
	}

	query, args, err := buildUpsertQuery(docs)
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "erro ao gravar documentos")
	}

	logrus.WithField("documents", len(docs)).Info("Documentos do dataset gravados")
	return nil
}

func buildUpsertQuery(docs []domain.DatasetDocument) (string, []any, error) {
	builder := squirrel.
		Insert(datasetsTable).
		Columns("region", "kind", "payload", "updated_at")

	for _, doc := range docs {
		updatedAt := doc.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = time.Now().UTC()
		}
		builder = builder.Values(string(doc.Region), string(doc.Kind), string(doc.Payload), updatedAt)
	}

	return builder.
		Suffix("ON CONFLICT (region, kind) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
