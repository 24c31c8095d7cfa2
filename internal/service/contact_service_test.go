package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nihongoclass/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

type fakeSender struct {
	inputs []*sesv2.SendEmailInput
	err    error
}

func (f *fakeSender) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestContactServiceDisabled(t *testing.T) {
	svc, err := NewContactService(context.Background(), ContactConfig{})
	if err != nil {
		t.Fatalf("NewContactService() error = %v", err)
	}
	if svc.IsEnabled() {
		t.Fatal("service without addresses should be disabled")
	}
	if err := svc.Submit(context.Background(), models.ContactMessage{Message: "질문 있어요"}); err != nil {
		t.Errorf("Submit() error = %v", err)
	}
}

func TestContactServiceValidation(t *testing.T) {
	svc := NewContactServiceWithSender(&fakeSender{}, ContactConfig{FromEmail: "a@example.com", ToEmail: "t@example.com"})

	tests := []struct {
		name    string
		msg     models.ContactMessage
		wantErr error
	}{
		{"ok", models.ContactMessage{Name: "민지", Message: "안녕하세요"}, nil},
		{"blank message", models.ContactMessage{Name: "민지", Message: "   "}, ErrContactMessageMissing},
		{"long name", models.ContactMessage{Name: strings.Repeat("가", MaxContactNameLength+1), Message: "hi"}, ErrContactNameTooLong},
		{"long message", models.ContactMessage{Message: strings.Repeat("a", MaxContactMessageLength+1)}, ErrContactMessageTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Submit(context.Background(), tt.msg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Submit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestContactServiceSendsEmail(t *testing.T) {
	sender := &fakeSender{}
	svc := NewContactServiceWithSender(sender, ContactConfig{
		FromEmail: "noreply@example.com",
		FromName:  "안내",
		ToEmail:   "teacher@example.com",
	})

	err := svc.Submit(context.Background(), models.ContactMessage{Name: "<b>민지</b>", Message: "수업 질문"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(sender.inputs) != 1 {
		t.Fatalf("SendEmail called %d times, want 1", len(sender.inputs))
	}

	in := sender.inputs[0]
	if got := aws.ToString(in.FromEmailAddress); got != "안내 <noreply@example.com>" {
		t.Errorf("FromEmailAddress = %q", got)
	}
	if to := in.Destination.ToAddresses; len(to) != 1 || to[0] != "teacher@example.com" {
		t.Errorf("ToAddresses = %v", to)
	}
	htmlBody := aws.ToString(in.Content.Simple.Body.Html.Data)
	if strings.Contains(htmlBody, "<b>민지</b>") || !strings.Contains(htmlBody, "&lt;b&gt;민지&lt;/b&gt;") {
		t.Error("name was not escaped in the HTML body")
	}
	if !strings.Contains(aws.ToString(in.Content.Simple.Body.Text.Data), "수업 질문") {
		t.Error("text body is missing the message")
	}
}

func TestContactServiceSendFailure(t *testing.T) {
	svc := NewContactServiceWithSender(&fakeSender{err: errors.New("throttled")}, ContactConfig{FromEmail: "a@example.com", ToEmail: "t@example.com"})
	if err := svc.Submit(context.Background(), models.ContactMessage{Message: "hi"}); err == nil {
		t.Error("Submit() should surface SES errors")
	}
}
