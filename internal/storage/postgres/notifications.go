package postgres

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
)

func (r *notificationRepository) Create(ctx context.Context, userID int64, message string, kind model.NotificationType) (*model.Notification, error) {
	n := model.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Message: message,
		Type:    kind,
	}
	const query = `INSERT INTO notifications (id, user_id, message, type)
                   VALUES ($1, $2, $3, $4) RETURNING created_at`
	if err := r.storage.pool.QueryRow(ctx, query, n.ID, n.UserID, n.Message, n.Type).Scan(&n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const query = `SELECT id, user_id, message, type, read, created_at
                   FROM notifications WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE user_id=$1 AND read=FALSE`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead is idempotent: acknowledging an already-read notification rewrites
// the same value and succeeds. The update is scoped to the recipient, so a
// caller holding someone else's notification id gets ErrNotFound.
func (r *notificationRepository) MarkRead(ctx context.Context, userID int64, id string) error {
	const query = `UPDATE notifications SET read=TRUE WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
