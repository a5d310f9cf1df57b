package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/abagency/backend/internal/models"
)

// Migration is one named, idempotent schema step. Every step must be safe to
// run on every startup: guards check for existing tables, columns and rows
// before mutating anything.
type Migration struct {
	Name string
	Run  func(tx *gorm.DB) error
}

// All returns the migration list in execution order. Legacy-table copies run
// before table creation: once the current tables exist the copy guards can
// never fire, so data rescue has to happen first.
func All() []Migration {
	return []Migration{
		{Name: "copy-legacy-user-profiles", Run: copyLegacyProfiles},
		{Name: "copy-legacy-user-events", Run: copyLegacyEvents},
		{Name: "copy-legacy-user-media", Run: copyLegacyMedia},
		{Name: "copy-legacy-user-performances", Run: copyLegacyPerformances},
		{Name: "copy-legacy-chat-messages", Run: copyLegacyMessages},
		{Name: "create-base-tables", Run: createBaseTables},
		{Name: "backfill-users-columns", Run: backfillUsers},
		{Name: "seed-canonical-accounts", Run: seedCanonicalAccounts},
	}
}

// Run executes every migration in order, each in its own transaction. A
// failure aborts startup: serving with a broken schema is worse than
// refusing to start.
func Run(db *gorm.DB) error {
	for _, migration := range All() {
		err := db.Transaction(func(tx *gorm.DB) error {
			return migration.Run(tx)
		})
		if err != nil {
			return fmt.Errorf("migration %q: %w", migration.Name, err)
		}
	}
	return nil
}

func createBaseTables(tx *gorm.DB) error {
	return tx.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Subscription{},
		&models.Event{},
		&models.Performance{},
		&models.MediaAsset{},
		&models.Message{},
		&models.Inquiry{},
	)
}

// backfillUsers repairs user rows inherited from older deployments. Missing
// columns themselves are added by AutoMigrate in create-base-tables; this
// step fills the data.
func backfillUsers(tx *gorm.DB) error {
	if !tableExists(tx, "users") {
		return nil
	}

	if err := tx.Exec(
		"UPDATE users SET email = 'user' || id || '@abagency.com' WHERE email IS NULL OR email = ''",
	).Error; err != nil {
		return err
	}

	hasFullName, err := columnExists(tx, "users", "full_name")
	if err != nil {
		return err
	}
	if hasFullName {
		if err := tx.Exec(
			"UPDATE users SET name = full_name WHERE (name IS NULL OR name = '') AND full_name IS NOT NULL",
		).Error; err != nil {
			return err
		}
	}

	if err := tx.Exec(
		"UPDATE users SET role = 'community' WHERE role IS NULL OR role = ''",
	).Error; err != nil {
		return err
	}

	// Rows inherited from old schemas can hold NULL where the models expect
	// a value; normalize so scans never trip over them.
	for _, stmt := range []string{
		"UPDATE users SET name = '' WHERE name IS NULL",
		"UPDATE users SET password_hash = '' WHERE password_hash IS NULL",
		"UPDATE users SET hero_video_url = '' WHERE hero_video_url IS NULL",
		"UPDATE users SET created_at = CURRENT_TIMESTAMP WHERE created_at IS NULL",
	} {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return backfillLegacyUsername(tx)
}

// backfillLegacyUsername keeps a leftover username column satisfied so NOT
// NULL constraints from old schemas cannot break inserts.
func backfillLegacyUsername(tx *gorm.DB) error {
	hasUsername, err := columnExists(tx, "users", "username")
	if err != nil {
		return err
	}
	if !hasUsername {
		return nil
	}

	// sqlite cannot alter a column default in place.
	if tx.Dialector.Name() == "postgres" {
		if err := tx.Exec("ALTER TABLE users ALTER COLUMN username SET DEFAULT 'user'").Error; err != nil {
			return err
		}
	}
	return tx.Exec(
		"UPDATE users SET username = COALESCE(username, email, 'user') WHERE username IS NULL",
	).Error
}

func tableExists(tx *gorm.DB, name string) bool {
	return tx.Migrator().HasTable(name)
}

func columnExists(tx *gorm.DB, table, column string) (bool, error) {
	var count int64
	var err error
	if tx.Dialector.Name() == "sqlite" {
		err = tx.Raw(
			"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column,
		).Scan(&count).Error
	} else {
		err = tx.Raw(
			"SELECT COUNT(*) FROM information_schema.columns WHERE table_name = ? AND column_name = ?",
			table, column,
		).Scan(&count).Error
	}
	return count > 0, err
}
