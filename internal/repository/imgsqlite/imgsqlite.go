package imgsqlite

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"inpaintapi/internal/model"
)

type SQLiteRepo struct {
	DB *sql.DB
}

func (r SQLiteRepo) Create(ctx context.Context, rec *model.ImageRecord) error {
	query := `INSERT INTO images (original_url, mask_url, cloudinary_original_id, cloudinary_mask_id)
	VALUES (?, ?, ?, ?)
	RETURNING id, created_at`
	return r.DB.QueryRowContext(ctx, query,
		rec.OriginalURL,
		rec.MaskURL,
		rec.OriginalAssetID,
		rec.MaskAssetID).Scan(&rec.ID, &rec.CreatedAt)
}

func (r SQLiteRepo) List(ctx context.Context) ([]model.ImageRecord, error) {
	// id breaks ties inside one CURRENT_TIMESTAMP second, keeping
	// "newest first" deterministic
	query := `SELECT id, original_url, mask_url, created_at
	FROM images
	ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Error while closing *sql.Rows after scanning: %v", err)
		}
	}()

	records := make([]model.ImageRecord, 0)
	for rows.Next() {
		var rec model.ImageRecord
		if err := rows.Scan(&rec.ID,
			&rec.OriginalURL,
			&rec.MaskURL,
			&rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return records, nil
}

func (r SQLiteRepo) AssetIDs(ctx context.Context, id int64) (string, string, error) {
	query := `SELECT cloudinary_original_id, cloudinary_mask_id
	FROM images
	WHERE id = ?`

	var original, mask string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&original, &mask)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return "", "", model.ErrImageNotFound
		default:
			return "", "", err // 500
		}
	}
	return original, mask, nil
}

func (r SQLiteRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM images
	WHERE id = ?`

	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}
