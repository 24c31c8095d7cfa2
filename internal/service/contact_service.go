package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"nihongoclass/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const (
	MaxContactNameLength    = 100
	MaxContactMessageLength = 2000
)

var (
	ErrContactNameTooLong    = errors.New("name is too long")
	ErrContactMessageMissing = errors.New("message is required")
	ErrContactMessageTooLong = errors.New("message is too long")
)

// EmailSender is the part of the SES v2 client used for contact delivery
type EmailSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// ContactService forwards questions from the FAQ page to the course instructor.
// Without SES configuration it only logs them.
type ContactService struct {
	client    EmailSender
	fromEmail string
	fromName  string
	toEmail   string
	enabled   bool
	debug     bool
}

// ContactConfig holds the settings for contact delivery
type ContactConfig struct {
	AWSRegion string
	FromEmail string
	FromName  string
	ToEmail   string
	Debug     bool
}

// NewContactService creates a contact service, connecting to Amazon SES when
// both sender and recipient addresses are configured
func NewContactService(ctx context.Context, cfg ContactConfig) (*ContactService, error) {
	if cfg.FromEmail == "" || cfg.ToEmail == "" {
		log.Println("Contact delivery disabled: SES_FROM_EMAIL or CONTACT_TO_EMAIL not configured")
		return &ContactService{enabled: false, debug: cfg.Debug}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Contact delivery enabled: from=%s, region=%s", cfg.FromEmail, cfg.AWSRegion)
	return NewContactServiceWithSender(sesv2.NewFromConfig(awsCfg), cfg), nil
}

// NewContactServiceWithSender creates an enabled contact service around sender
func NewContactServiceWithSender(sender EmailSender, cfg ContactConfig) *ContactService {
	return &ContactService{
		client:    sender,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		toEmail:   cfg.ToEmail,
		enabled:   true,
		debug:     cfg.Debug,
	}
}

// IsEnabled returns whether messages are actually delivered
func (s *ContactService) IsEnabled() bool {
	return s.enabled
}

// Validate trims msg and checks its length limits
func (s *ContactService) Validate(msg *models.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Message = strings.TrimSpace(msg.Message)

	if utf8.RuneCountInString(msg.Name) > MaxContactNameLength {
		return ErrContactNameTooLong
	}
	if msg.Message == "" {
		return ErrContactMessageMissing
	}
	if utf8.RuneCountInString(msg.Message) > MaxContactMessageLength {
		return ErrContactMessageTooLong
	}
	return nil
}

// Submit validates and delivers a contact message
func (s *ContactService) Submit(ctx context.Context, msg models.ContactMessage) error {
	if err := s.Validate(&msg); err != nil {
		return err
	}
	if msg.SubmittedAt.IsZero() {
		msg.SubmittedAt = time.Now()
	}

	if !s.enabled {
		log.Printf("Skipping contact delivery (service disabled): %d chars from %s", utf8.RuneCountInString(msg.Message), msg.RemoteAddr)
		return nil
	}

	name := msg.Name
	if name == "" {
		name = "익명"
	}
	subject := fmt.Sprintf("[일본어 수업 문의] %s", name)
	textBody := fmt.Sprintf("보낸 사람: %s\n보낸 시각: %s\n\n%s\n", name, msg.SubmittedAt.Format(time.RFC3339), msg.Message)
	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; line-height: 1.6;">
	<p><b>보낸 사람:</b> %s<br><b>보낸 시각:</b> %s</p>
	<p style="white-space: pre-wrap;">%s</p>
</body>
</html>`, html.EscapeString(name), msg.SubmittedAt.Format(time.RFC3339), html.EscapeString(msg.Message))

	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}

	if s.debug && result.MessageId != nil {
		log.Printf("[DEBUG] Contact message sent, SES message ID: %s", *result.MessageId)
	}
	log.Printf("Contact message delivered to %s", s.toEmail)
	return nil
}
