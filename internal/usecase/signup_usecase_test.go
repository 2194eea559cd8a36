package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/finbridge/cardproc/internal/domain"
)

func validSignup() SignupInput {
	return SignupInput{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "555-0100",
		Address:         "1 Main St",
		CardNumber:      "4111111111111111",
		ExpiryDate:      "12/27",
		CVV:             "123",
		PropertyDetails: "2br apartment",
	}
}

func TestSignup_Success(t *testing.T) {
	store := &storeStub{}
	log := &customerLogStub{}
	uc := NewSignupUseCase(store, log, &idGenStub{id: "01J5TESTULID"}, fixedNow, nopLogger())

	out, err := uc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.CustomerID != "01J5TESTULID" {
		t.Errorf("CustomerID = %s, want 01J5TESTULID", out.CustomerID)
	}
	if out.CardOnFile != "4111-****-****-1111" {
		t.Errorf("CardOnFile = %s, want masked number", out.CardOnFile)
	}

	if len(store.appends) != 1 {
		t.Fatalf("expected 1 card appended, got %d", len(store.appends))
	}
	card := store.appends[0]
	if !card.Balance.IsZero() {
		t.Errorf("new card balance = %s, want 0", card.Balance)
	}
	if !card.CreditLimit.Equal(domain.DefaultCreditLimit) {
		t.Errorf("CreditLimit = %s, want %s", card.CreditLimit, domain.DefaultCreditLimit)
	}
	if !card.APR.Equal(domain.DefaultAPR) {
		t.Errorf("APR = %s, want %s", card.APR, domain.DefaultAPR)
	}

	if len(log.profiles) != 1 {
		t.Fatalf("expected 1 profile logged, got %d", len(log.profiles))
	}
	profile := log.profiles[0]
	if profile.CardOnFile != "4111-****-****-1111" {
		t.Errorf("profile must store the masked number, got %s", profile.CardOnFile)
	}
	if !profile.CreatedAt.Equal(fixedNow().UTC()) {
		t.Errorf("CreatedAt = %s, want %s", profile.CreatedAt, fixedNow().UTC())
	}
}

func TestSignup_MissingFields(t *testing.T) {
	required := []struct {
		name  string
		strip func(*SignupInput)
	}{
		{"fullName", func(in *SignupInput) { in.FullName = "" }},
		{"email", func(in *SignupInput) { in.Email = "" }},
		{"cardNumber", func(in *SignupInput) { in.CardNumber = "" }},
		{"expiryDate", func(in *SignupInput) { in.ExpiryDate = "" }},
		{"cvv", func(in *SignupInput) { in.CVV = "" }},
	}

	for _, tc := range required {
		t.Run(tc.name, func(t *testing.T) {
			store := &storeStub{}
			uc := NewSignupUseCase(store, &customerLogStub{}, &idGenStub{id: "x"}, fixedNow, nopLogger())

			input := validSignup()
			tc.strip(&input)

			_, err := uc.Signup(context.Background(), input)
			if !errors.Is(err, domain.ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
			if len(store.appends) != 0 {
				t.Error("nothing may be written for invalid input")
			}
		})
	}
}

func TestSignup_OptionalFieldsMayBeEmpty(t *testing.T) {
	input := validSignup()
	input.Phone = ""
	input.Address = ""
	input.PropertyDetails = ""

	uc := NewSignupUseCase(&storeStub{}, &customerLogStub{}, &idGenStub{id: "x"}, fixedNow, nopLogger())
	if _, err := uc.Signup(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSignup_RejectsInvalidCards(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SignupInput)
		want   error
	}{
		{"non numeric", func(in *SignupInput) { in.CardNumber = "4111-1111-1111-1111" }, domain.ErrInvalidCardNumber},
		{"wrong length", func(in *SignupInput) { in.CardNumber = "411111111111111" }, domain.ErrInvalidCardNumber},
		{"fails luhn", func(in *SignupInput) { in.CardNumber = "4111111111111112" }, domain.ErrCardFailsLuhn},
		{"bad expiry", func(in *SignupInput) { in.ExpiryDate = "13/27" }, domain.ErrInvalidExpiry},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &storeStub{}
			uc := NewSignupUseCase(store, &customerLogStub{}, &idGenStub{id: "x"}, fixedNow, nopLogger())

			input := validSignup()
			tc.mutate(&input)

			_, err := uc.Signup(context.Background(), input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if len(store.appends) != 0 {
				t.Error("nothing may be written for invalid input")
			}
		})
	}
}

func TestSignup_DuplicateCard(t *testing.T) {
	input := validSignup()
	store := &storeStub{cards: []domain.Card{{Number: input.CardNumber}}}
	uc := NewSignupUseCase(store, &customerLogStub{}, &idGenStub{id: "x"}, fixedNow, nopLogger())

	_, err := uc.Signup(context.Background(), input)
	if !errors.Is(err, domain.ErrCardExists) {
		t.Fatalf("expected ErrCardExists, got %v", err)
	}
	if len(store.appends) != 0 {
		t.Error("duplicate check must not mutate the store")
	}
}

func TestSignup_TruncatesLongName(t *testing.T) {
	input := validSignup()
	input.FullName = strings.Repeat("A", 40)

	store := &storeStub{}
	log := &customerLogStub{}
	uc := NewSignupUseCase(store, log, &idGenStub{id: "x"}, fixedNow, nopLogger())

	if _, err := uc.Signup(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.appends[0].CardholderName; len(got) != domain.MaxCardholderNameLength {
		t.Errorf("stored name length = %d, want %d", len(got), domain.MaxCardholderNameLength)
	}
	// The audit log keeps the full name; only the record field is bounded.
	if log.profiles[0].FullName != input.FullName {
		t.Errorf("profile name = %s, want untruncated", log.profiles[0].FullName)
	}
}

func TestSignup_TruncatesMultiByteNameOnRuneBoundary(t *testing.T) {
	// 41 bytes; byte 30 falls inside the 15th two-byte rune, so a byte slice
	// at the field width would leave invalid UTF-8 in the record.
	input := validSignup()
	input.FullName = "A" + strings.Repeat("é", 20)

	store := &storeStub{}
	uc := NewSignupUseCase(store, &customerLogStub{}, &idGenStub{id: "x"}, fixedNow, nopLogger())

	if _, err := uc.Signup(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.appends[0].CardholderName
	if len(got) > domain.MaxCardholderNameLength {
		t.Errorf("stored name is %d bytes, want at most %d", len(got), domain.MaxCardholderNameLength)
	}
	if !utf8.ValidString(got) {
		t.Errorf("stored name is not valid UTF-8: %q", got)
	}
	if want := "A" + strings.Repeat("é", 14); got != want {
		t.Errorf("stored name = %q, want %q", got, want)
	}
}

func TestSignup_StoreWriteError(t *testing.T) {
	store := &storeStub{writeErr: domain.ErrStoreIO}
	log := &customerLogStub{}
	uc := NewSignupUseCase(store, log, &idGenStub{id: "x"}, fixedNow, nopLogger())

	_, err := uc.Signup(context.Background(), validSignup())
	if !errors.Is(err, domain.ErrStoreIO) {
		t.Fatalf("expected ErrStoreIO, got %v", err)
	}
	if len(log.profiles) != 0 {
		t.Error("no profile may be logged when the card write fails")
	}
}
