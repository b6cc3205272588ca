package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/sdas2004/job_portal/configs"
	"github.com/sdas2004/job_portal/database"
	"github.com/sdas2004/job_portal/models"
	"github.com/sdas2004/job_portal/notifications"
)

// A certificate is issued for attempts of at least this size scoring at
// least 80%.
const (
	certificateMinQuestions = 5
	certificatePassPercent  = 80
)

// CheckAndGenerateCertificate issues a skill certificate for a passing
// attempt: renders an HTML certificate to PDF, uploads it and emails the
// link. Best effort; failures are logged and never affect the attempt.
func CheckAndGenerateCertificate(result models.TestResult) {
	if result.Total < certificateMinQuestions {
		return
	}
	if result.Score*100 < result.Total*certificatePassPercent {
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", result.UserID).Error; err != nil {
		log.Printf("🔥 Failed to load user for certificate: %v", err)
		return
	}
	var category models.TestCategory
	if err := database.DB.First(&category, "id = ?", result.CategoryID).Error; err != nil {
		log.Printf("🔥 Failed to load category for certificate: %v", err)
		return
	}

	// One certificate per candidate per category.
	var existing models.Certificate
	err := database.DB.Where("user_id = ? AND category_id = ?", result.UserID, result.CategoryID).
		First(&existing).Error
	if err == nil {
		return
	}

	title := fmt.Sprintf("%s Skills Assessment", category.Name)

	htmlData, err := generateCertificateHTML(user.Email, title, result.Score, result.Total)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, result.UserID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	certificate := models.Certificate{
		UserID:         result.UserID,
		CategoryID:     result.CategoryID,
		Title:          title,
		Score:          result.Score,
		Total:          result.Total,
		CertificateURL: uploadURL,
		IssuedAt:       time.Now().UTC(),
	}

	if err := database.DB.Create(&certificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for user %s: %v", result.UserID, err)
		return
	}

	sendEmail(
		"Your "+title+" Certificate",
		[]string{user.Email},
		notifications.TemplateCertificateIssued,
		map[string]any{
			"CategoryName":   category.Name,
			"Score":          result.Score,
			"Total":          result.Total,
			"CertificateURL": uploadURL,
		},
	)
	log.Printf("✅ Generated and uploaded certificate '%s' for user %s.", title, result.UserID)
}

func generateCertificateHTML(candidate, title string, score, total int) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		CandidateName string
		Title         string
		Score         int
		Total         int
		IssuedDate    string
	}{
		CandidateName: candidate,
		Title:         title,
		Score:         score,
		Total:         total,
		IssuedDate:    time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, userID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", userID, uuid.New().String()),
		Folder:       "job_portal_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
