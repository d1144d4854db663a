package communication

import (
	"errors"
	"strings"
	"testing"
)

func TestParseEmailKind(t *testing.T) {
	kind, err := ParseEmailKind(" Inquiry ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if kind != EmailInquiry {
		t.Fatalf("expected inquiry, got %q", kind)
	}

	if _, err := ParseEmailKind("memo"); !errors.Is(err, ErrUnknownEmailKind) {
		t.Fatalf("expected ErrUnknownEmailKind, got %v", err)
	}
}

func TestGenerateEmail_Inquiry(t *testing.T) {
	email, err := GenerateEmail(EmailInquiry, EmailParams{
		SenderName:    "Alice Johnson",
		RecipientName: "TechCorp",
		ProjectTitle:  "Personal Blog",
		Deadline:      "March 15",
		BudgetRange:   "50,000-60,000",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for _, want := range []string{
		"Subject: Project Inquiry - Personal Blog",
		"Dear TechCorp,",
		"March 15",
		"50,000-60,000",
		"Alice Johnson",
	} {
		if !strings.Contains(email, want) {
			t.Fatalf("email missing %q:\n%s", want, email)
		}
	}
}

func TestGenerateEmail_DefaultsWhenExtrasEmpty(t *testing.T) {
	email, err := GenerateEmail(EmailInquiry, EmailParams{
		SenderName:    "Bob",
		RecipientName: "StartupXYZ",
		ProjectTitle:  "Data Dashboard",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(email, "to be discussed") || !strings.Contains(email, "flexible") {
		t.Fatalf("expected default deadline and budget:\n%s", email)
	}
}

func TestGenerateEmail_AllKinds(t *testing.T) {
	params := EmailParams{SenderName: "Carol", RecipientName: "BigBusiness", ProjectTitle: "Mobile Game"}
	for _, kind := range []EmailKind{EmailInquiry, EmailProposal, EmailAcceptance, EmailRejection} {
		email, err := GenerateEmail(kind, params)
		if err != nil {
			t.Fatalf("kind %q: unexpected err: %v", kind, err)
		}
		if !strings.Contains(email, "Mobile Game") {
			t.Fatalf("kind %q: email missing project title", kind)
		}
		if !strings.Contains(email, "Carol") {
			t.Fatalf("kind %q: email missing sender", kind)
		}
	}
}

func TestGenerateEmail_UnknownKind(t *testing.T) {
	if _, err := GenerateEmail(EmailKind("memo"), EmailParams{}); !errors.Is(err, ErrUnknownEmailKind) {
		t.Fatalf("expected ErrUnknownEmailKind, got %v", err)
	}
}
