package migrations

import (
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/models"
)

// Legacy deployments used differently named tables (and some differently
// named columns). Each copy below only fires when the legacy table is present
// and the current one is not, which also makes re-runs no-ops.

func copyLegacyProfiles(tx *gorm.DB) error {
	if !tableExists(tx, "user_profiles") || tableExists(tx, "profiles") {
		return nil
	}
	if err := tx.Migrator().CreateTable(&models.Profile{}); err != nil {
		return err
	}
	return tx.Exec(`
		INSERT INTO profiles (user_id, bio, phone, location, website)
		SELECT user_id, COALESCE(bio, ''), COALESCE(phone, ''), COALESCE(location, ''), COALESCE(website, '')
		FROM user_profiles
	`).Error
}

func copyLegacyEvents(tx *gorm.DB) error {
	if !tableExists(tx, "user_events") || tableExists(tx, "events") {
		return nil
	}
	if err := tx.Migrator().CreateTable(&models.Event{}); err != nil {
		return err
	}
	// The old schema kept free-form notes where we now keep a location.
	return tx.Exec(`
		INSERT INTO events (user_id, title, event_date, location)
		SELECT user_id, title, event_date, COALESCE(notes, '') FROM user_events
	`).Error
}

func copyLegacyMedia(tx *gorm.DB) error {
	if !tableExists(tx, "user_media") || tableExists(tx, "media_assets") {
		return nil
	}
	if err := tx.Migrator().CreateTable(&models.MediaAsset{}); err != nil {
		return err
	}
	return tx.Exec(`
		INSERT INTO media_assets (user_id, media_type, url, uploaded_at)
		SELECT user_id, media_type, url, CURRENT_TIMESTAMP FROM user_media
	`).Error
}

func copyLegacyPerformances(tx *gorm.DB) error {
	if !tableExists(tx, "user_performances") || tableExists(tx, "performances") {
		return nil
	}
	if err := tx.Migrator().CreateTable(&models.Performance{}); err != nil {
		return err
	}
	return tx.Exec(`
		INSERT INTO performances (user_id, title, performance_date, fee)
		SELECT user_id, performance_name, performance_date, COALESCE(fee_earned, 0) FROM user_performances
	`).Error
}

func copyLegacyMessages(tx *gorm.DB) error {
	if !tableExists(tx, "chat_messages") || tableExists(tx, "messages") {
		return nil
	}
	if err := tx.Migrator().CreateTable(&models.Message{}); err != nil {
		return err
	}
	return tx.Exec(`
		INSERT INTO messages (sender_id, recipient_id, body, created_at)
		SELECT sender_id, recipient_id, message, created_at FROM chat_messages
	`).Error
}
