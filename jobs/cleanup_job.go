package jobs

import (
	"log"
	"time"

	"github.com/sdas2004/job_portal/database"
	"github.com/sdas2004/job_portal/models"
)

// PurgeExpiredCredentials removes pending registrations and reset tokens
// past their lifespan. Validity is always checked on read, so this is pure
// housekeeping.
func PurgeExpiredCredentials() {
	cutoff := time.Now().UTC().Add(-models.CredentialLifespan)

	result := database.DB.Where("created_at < ?", cutoff).Delete(&models.PendingUser{})
	if result.Error != nil {
		log.Printf("Error purging expired pending users: %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("Purged %d expired pending registrations", result.RowsAffected)
	}

	result = database.DB.Where("created_at < ?", cutoff).Delete(&models.Token{})
	if result.Error != nil {
		log.Printf("Error purging expired tokens: %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("Purged %d expired tokens", result.RowsAffected)
	}
}
