package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrReorderMismatch is returned when a reorder request references IDs
// that are missing, duplicated, or not owned by the requesting user.
var ErrReorderMismatch = errors.New("repository: reorder IDs do not match the user's rows")

// reorderPositions verifies that ids covers all rows of model owned by
// userID, exactly once each, and assigns positions 0..n-1 in the given
// order. The whole operation runs in one transaction; on any mismatch
// nothing is written.
func reorderPositions(db *gorm.DB, model any, userID uint, ids []uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var total int64
		err := tx.Model(model).
			Where("user_id = ?", userID).
			Count(&total).Error
		if err != nil {
			return err
		}
		if total != int64(len(ids)) {
			return ErrReorderMismatch
		}

		var owned int64
		err = tx.Model(model).
			Where("user_id = ? AND id IN ?", userID, ids).
			Count(&owned).Error
		if err != nil {
			return err
		}

		// Duplicated IDs inflate len(ids) past the matched row count, so
		// this second comparison also rejects them.
		if owned != int64(len(ids)) {
			return ErrReorderMismatch
		}

		for position, id := range ids {
			err := tx.Model(model).
				Where("id = ? AND user_id = ?", id, userID).
				Update("position", position).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
