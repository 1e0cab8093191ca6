package services

import (
	"context"
	"log"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/Alok-CS-2022/import-export-site/app/repositories"
)

// InquiryService persists inquiries and fires the owner notification.
// Both the contact form and cart checkout go through here so there is
// exactly one submission path.
type InquiryService struct {
	inquiryRepo repositories.InquiryRepository
	mailer      *Mailer
}

func NewInquiryService(inquiryRepo repositories.InquiryRepository, mailer *Mailer) *InquiryService {
	return &InquiryService{inquiryRepo: inquiryRepo, mailer: mailer}
}

// Submit stores the inquiry and then attempts the email notification.
// A notification failure is logged and never fails the submission.
func (s *InquiryService) Submit(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusPending
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return err
	}

	if s.mailer != nil {
		if err := s.mailer.SendInquiryNotification(inquiry); err != nil {
			log.Printf("InquiryService.Submit: notification email failed for inquiry %s: %v", inquiry.ID, err)
		}
	}

	return nil
}
