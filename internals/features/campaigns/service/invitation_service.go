// file: internals/features/campaigns/service/invitation_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "discprofile_backend/internals/features/assessments/model"
	cmodel "discprofile_backend/internals/features/campaigns/model"
	helper "discprofile_backend/internals/helpers"
)

var (
	ErrCampaignNotFound = errors.New("campanha não encontrada")
	ErrCampaignClosed   = errors.New("campanha fora da janela de aplicação")
)

// Mailer é o colaborador externo de envio; a entrega em si está fora do
// escopo da plataforma. LogMailer cobre ambientes sem provedor configurado.
type Mailer interface {
	SendInvite(ctx context.Context, toName, toEmail, inviteLink string) error
}

type LogMailer struct{}

func (LogMailer) SendInvite(_ context.Context, toName, toEmail, inviteLink string) error {
	log.Printf("[LogMailer] invite to=%s <%s> link=%s", toName, toEmail, inviteLink)
	return nil
}

/* =========================================================
   SERVICE: convite de candidato
   Cria a avaliação pendente, assina o token de convite e entrega o
   e-mail ao Mailer.
========================================================= */

type InvitationService struct {
	DB     *gorm.DB
	Mailer Mailer

	InviteSecret string
	InviteTTL    time.Duration
	BaseURL      string // prefixo do link do convite (frontend)
}

func NewInvitationService(db *gorm.DB, mailer Mailer, inviteSecret, baseURL string) *InvitationService {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &InvitationService{
		DB:           db,
		Mailer:       mailer,
		InviteSecret: inviteSecret,
		InviteTTL:    30 * 24 * time.Hour,
		BaseURL:      baseURL,
	}
}

type InviteResult struct {
	Assessment amodel.AssessmentModel
	Token      string
	ExpiresAt  time.Time
}

func (s *InvitationService) Invite(ctx context.Context, campaignID uuid.UUID, candidateName, candidateEmail string) (*InviteResult, error) {
	var campaign cmodel.CampaignModel
	if err := s.DB.WithContext(ctx).
		First(&campaign, "campaign_id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	if !campaign.IsOpen(now) {
		return nil, ErrCampaignClosed
	}

	assessment := amodel.AssessmentModel{
		AssessmentCampaignID:     campaignID,
		AssessmentCandidateName:  candidateName,
		AssessmentCandidateEmail: candidateEmail,
	}
	if err := s.DB.WithContext(ctx).Create(&assessment).Error; err != nil {
		return nil, err
	}

	token, err := helper.SignInviteToken(s.InviteSecret, assessment.AssessmentID, s.InviteTTL)
	if err != nil {
		return nil, fmt.Errorf("sign invite token: %w", err)
	}

	inviteLink := fmt.Sprintf("%s/avaliacao?token=%s", s.BaseURL, token)
	if err := s.Mailer.SendInvite(ctx, candidateName, candidateEmail, inviteLink); err != nil {
		// convite fica válido mesmo com falha de entrega; o admin pode
		// reenviar o link manualmente
		log.Printf("[InvitationService] mailer failed (invite still valid): %v", err)
	}

	log.Printf("[InvitationService] candidate invited. campaign_id=%s assessment_id=%s email=%s",
		campaignID, assessment.AssessmentID, candidateEmail)

	return &InviteResult{
		Assessment: assessment,
		Token:      token,
		ExpiresAt:  now.Add(s.InviteTTL),
	}, nil
}
