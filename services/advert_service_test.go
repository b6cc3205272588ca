package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sdas2004/job_portal/database"
	"github.com/sdas2004/job_portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDuplicateEmailCaseInsensitive(t *testing.T) {
	setupTestDB(t)
	company := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	advert := createAdvert(t, company, advertFields("Backend Engineer"), time.Now().UTC())

	first, err := Apply(advert.ID, "Jane Doe", "Jane.Doe@Example.com", "", "https://cv.example/jane.pdf")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", first.Email)
	assert.Equal(t, models.StatusApplied, first.Status)

	_, err = Apply(advert.ID, "Jane Doe", "JANE.DOE@example.COM", "", "https://cv.example/jane.pdf")
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	var count int64
	database.DB.Model(&models.JobApplication{}).Where("job_advert_id = ?", advert.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestApplySameEmailDifferentAdverts(t *testing.T) {
	setupTestDB(t)
	company := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	first := createAdvert(t, company, advertFields("Backend Engineer"), time.Now().UTC())
	second := createAdvert(t, company, advertFields("Frontend Engineer"), time.Now().UTC())

	_, err := Apply(first.ID, "Jane", "jane@example.com", "", "cv.pdf")
	require.NoError(t, err)
	_, err = Apply(second.ID, "Jane", "jane@example.com", "", "cv.pdf")
	assert.NoError(t, err)
}

func TestApplyUnknownAdvert(t *testing.T) {
	setupTestDB(t)

	_, err := Apply(uuid.New(), "Jane", "jane@example.com", "", "cv.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchAdvertsFiltersAndOrdering(t *testing.T) {
	setupTestDB(t)
	company := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)

	older := advertFields("Go Backend Engineer")
	older.Skills = "go, postgres"
	createAdvert(t, company, older, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	newer := advertFields("Senior Go Developer")
	newer.Location = "Munich"
	createAdvert(t, company, newer, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	unrelated := advertFields("Product Designer")
	unrelated.Skills = "figma"
	createAdvert(t, company, unrelated, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	draft := advertFields("Go Platform Engineer")
	draft.IsPublished = false
	createAdvert(t, company, draft, time.Now().UTC())

	expired := advertFields("Go Infra Engineer")
	expired.Deadline = time.Now().UTC().Add(-48 * time.Hour)
	createAdvert(t, company, expired, time.Now().UTC())

	results, err := SearchAdverts("go", "")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Senior Go Developer", results[0].Title)
	assert.Equal(t, "Go Backend Engineer", results[1].Title)

	results, err = SearchAdverts("go", "munich")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Senior Go Developer", results[0].Title)

	// No filters lists everything active, newest first.
	results, err = SearchAdverts("", "")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Product Designer", results[0].Title)
}

func TestUpdateAdvertOwnerOnly(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	other := createUser(t, "hr@rival.com", "pass123", models.RoleCompany)
	advert := createAdvert(t, owner, advertFields("Backend Engineer"), time.Now().UTC())

	fields := advertFields("Backend Engineer II")
	_, err := UpdateAdvert(advert.ID, other.ID, fields)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := UpdateAdvert(advert.ID, owner.ID, fields)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer II", updated.Title)
}

func TestDeleteAdvertOwnerOnly(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	other := createUser(t, "hr@rival.com", "pass123", models.RoleCompany)
	advert := createAdvert(t, owner, advertFields("Backend Engineer"), time.Now().UTC())

	assert.ErrorIs(t, DeleteAdvert(advert.ID, other.ID), ErrForbidden)
	require.NoError(t, DeleteAdvert(advert.ID, owner.ID))

	_, err := GetAdvert(advert.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublishAdvert(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	other := createUser(t, "hr@rival.com", "pass123", models.RoleCompany)

	fields := advertFields("Backend Engineer")
	fields.IsPublished = false
	advert := createAdvert(t, owner, fields, time.Now().UTC())

	_, err := PublishAdvert(advert.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	published, err := PublishAdvert(advert.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	results, err := SearchAdverts("backend", "")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestDecideRejectionSendsOneEmail(t *testing.T) {
	setupTestDB(t)
	sent := captureEmails(t)

	owner := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	advert := createAdvert(t, owner, advertFields("Backend Engineer"), time.Now().UTC())
	application, err := Apply(advert.ID, "Jane Doe", "jane@example.com", "", "cv.pdf")
	require.NoError(t, err)

	decided, err := Decide(application.ID, owner.ID, models.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, decided.Status)

	require.Len(t, *sent, 1)
	mail := (*sent)[0]
	assert.Equal(t, []string{"jane@example.com"}, mail.Recipients)
	assert.Contains(t, mail.Subject, "Backend Engineer")
}

func TestDecideInterviewSendsNoEmail(t *testing.T) {
	setupTestDB(t)
	sent := captureEmails(t)

	owner := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	advert := createAdvert(t, owner, advertFields("Backend Engineer"), time.Now().UTC())
	application, err := Apply(advert.ID, "Jane Doe", "jane@example.com", "", "cv.pdf")
	require.NoError(t, err)

	decided, err := Decide(application.ID, owner.ID, models.StatusInterview)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInterview, decided.Status)
	assert.Empty(t, *sent)
}

func TestDecideNonOwnerForbidden(t *testing.T) {
	setupTestDB(t)
	sent := captureEmails(t)

	owner := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	other := createUser(t, "hr@rival.com", "pass123", models.RoleCompany)
	advert := createAdvert(t, owner, advertFields("Backend Engineer"), time.Now().UTC())
	application, err := Apply(advert.ID, "Jane Doe", "jane@example.com", "", "cv.pdf")
	require.NoError(t, err)

	_, err = Decide(application.ID, other.ID, models.StatusRejected)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, *sent)

	var stored models.JobApplication
	require.NoError(t, database.DB.First(&stored, "id = ?", application.ID).Error)
	assert.Equal(t, models.StatusApplied, stored.Status)
}

func TestAdvertApplicationsOwnerOnly(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	other := createUser(t, "hr@rival.com", "pass123", models.RoleCompany)
	advert := createAdvert(t, owner, advertFields("Backend Engineer"), time.Now().UTC())

	_, err := Apply(advert.ID, "Jane", "jane@example.com", "", "cv.pdf")
	require.NoError(t, err)
	_, err = Apply(advert.ID, "John", "john@example.com", "", "cv.pdf")
	require.NoError(t, err)

	_, err = AdvertApplications(advert.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	applications, err := AdvertApplications(advert.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, applications, 2)
}

func TestMyJobsCountsApplicants(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	first := createAdvert(t, owner, advertFields("Backend Engineer"), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	createAdvert(t, owner, advertFields("Frontend Engineer"), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	_, err := Apply(first.ID, "Jane", "jane@example.com", "", "cv.pdf")
	require.NoError(t, err)

	jobs, err := MyJobs(owner.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Frontend Engineer", jobs[0].Title)
	assert.EqualValues(t, 0, jobs[0].TotalApplicants)
	assert.EqualValues(t, 1, jobs[1].TotalApplicants)
}

func TestMyApplicationsMatchesLoweredEmail(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "hr@acme.com", "pass123", models.RoleCompany)
	advert := createAdvert(t, owner, advertFields("Backend Engineer"), time.Now().UTC())

	_, err := Apply(advert.ID, "Jane", "Jane@Example.com", "", "cv.pdf")
	require.NoError(t, err)

	applications, err := MyApplications("JANE@EXAMPLE.COM")
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, advert.ID, applications[0].JobAdvertID)
}
