package services

import (
	"context"
	"fmt"

	"portfolio_backend/internal/email"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

// ContactService forwards messages from a public portfolio page to the
// profile's email address.
type ContactService interface {
	Send(ctx context.Context, slug string, req *dto.ContactRequest) error
}

type contactService struct {
	portfolio PortfolioService
	profile   repositories.ProfileRepository
	provider  email.Provider
}

func NewContactService(portfolio PortfolioService, profile repositories.ProfileRepository, provider email.Provider) ContactService {
	return &contactService{
		portfolio: portfolio,
		profile:   profile,
		provider:  provider,
	}
}

func (s *contactService) Send(ctx context.Context, slug string, req *dto.ContactRequest) error {
	link, err := s.portfolio.Resolve(ctx, slug)
	if err != nil {
		return err
	}

	recipient := s.profile.Get().Email
	if recipient == "" {
		return apperrors.ErrInvalidOperation("contact", "Profile has no email address")
	}

	data := email.TemplateData{
		"Portfolio": link.Title,
		"Name":      req.Name,
		"Email":     req.Email,
		"Subject":   req.Subject,
		"Message":   req.Message,
	}
	subject := fmt.Sprintf("[%s] %s", link.Slug, req.Subject)

	if err := s.provider.SendTemplate([]string{recipient}, subject, email.ContactTemplate, data); err != nil {
		logger.CtxWithError(ctx, "contact message not delivered", err, "slug", slug)
		return apperrors.ErrEmailDelivery(err)
	}

	logger.CtxInfo(ctx, "contact message sent", "slug", slug, "from", req.Email)
	return nil
}
