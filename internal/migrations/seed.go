package migrations

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/models"
)

type seedAccount struct {
	Email    string
	Password string
	Name     string
	Role     string
	HeroURL  string
}

var canonicalAccounts = []seedAccount{
	{
		Email:    "admin@abagency.com",
		Password: "Admin123!",
		Name:     "AB AGENCY Admin",
		Role:     models.RoleAdmin,
		HeroURL:  "https://www.youtube-nocookie.com/embed/_4FGVRpNoEs",
	},
	{
		Email:    "moderator@abagency.com",
		Password: "Mod123!",
		Name:     "AB AGENCY Moderator",
		Role:     models.RoleModerator,
		HeroURL:  "https://www.youtube-nocookie.com/embed/Tz-khkZz_zY",
	},
	{
		Email:    "artist@abagency.com",
		Password: "User123!",
		Name:     "Artiste Résident",
		Role:     models.RoleCommunity,
		HeroURL:  "https://www.youtube-nocookie.com/embed/7FhkTtoq9Pg",
	},
}

// seedCanonicalAccounts guarantees the three demo accounts exist. On a fresh
// database it also seeds a self-consistent workspace for the community
// account; on later runs existing data is left untouched and only missing
// accounts are recreated.
func seedCanonicalAccounts(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	firstRun := count == 0

	created := map[string]*models.User{}
	for _, account := range canonicalAccounts {
		user, err := ensureAccount(tx, account)
		if err != nil {
			return err
		}
		created[account.Role] = user
	}

	if err := backfillLegacyUsername(tx); err != nil {
		return err
	}

	if !firstRun {
		return nil
	}
	return seedCommunityWorkspace(tx, created[models.RoleModerator], created[models.RoleCommunity])
}

func ensureAccount(tx *gorm.DB, account seedAccount) (*models.User, error) {
	var existing models.User
	err := tx.Where("email = ?", account.Email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// A leftover username column can carry NOT NULL without a default
	// (sqlite cannot add one), so the insert has to provide a value itself.
	hasUsername, err := columnExists(tx, "users", "username")
	if err != nil {
		return nil, err
	}
	if hasUsername {
		username := strings.SplitN(account.Email, "@", 2)[0]
		if err := tx.Exec(
			`INSERT INTO users (email, password_hash, name, role, hero_video_url, created_at, username)
			 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, ?)`,
			account.Email, string(hash), account.Name, account.Role, account.HeroURL, username,
		).Error; err != nil {
			return nil, err
		}
		var user models.User
		if err := tx.Where("email = ?", account.Email).First(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	user := models.User{
		Email:        account.Email,
		PasswordHash: string(hash),
		Name:         account.Name,
		Role:         account.Role,
		HeroVideoURL: account.HeroURL,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func seedCommunityWorkspace(tx *gorm.DB, moderator, artist *models.User) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	profile := models.Profile{
		UserID:   artist.ID,
		Bio:      "Artiste pluridisciplinaire spécialisée en danse et performance scénique.",
		Phone:    "+33 6 00 00 00 00",
		Location: "Paris, France",
		Website:  "https://abagency.com",
	}
	if err := tx.Create(&profile).Error; err != nil {
		return err
	}

	renewal := today.AddDate(0, 0, 30)
	subscription := models.Subscription{
		UserID:      artist.ID,
		Plan:        "Premium",
		Status:      "Active",
		RenewalDate: &renewal,
	}
	if err := tx.Create(&subscription).Error; err != nil {
		return err
	}

	event := models.Event{
		UserID:    artist.ID,
		Title:     "Gala Printemps",
		EventDate: today.AddDate(0, 0, 14),
		Location:  "Théâtre Lumière",
	}
	if err := tx.Create(&event).Error; err != nil {
		return err
	}

	performance := models.Performance{
		UserID:          artist.ID,
		Title:           "Performance Aérienne",
		PerformanceDate: today.AddDate(0, 0, -7),
		Fee:             850.0,
	}
	if err := tx.Create(&performance).Error; err != nil {
		return err
	}

	welcome := models.Message{
		SenderID:    moderator.ID,
		RecipientID: &artist.ID,
		Body:        "Bienvenue sur votre espace. N'hésitez pas à partager vos besoins.",
	}
	return tx.Create(&welcome).Error
}
