package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finbridge/cardproc/internal/adapter/http/dto"
	"github.com/finbridge/cardproc/internal/domain"
	"github.com/finbridge/cardproc/internal/usecase"
)

type validateServiceStub struct {
	fn func(ctx context.Context, number string) (usecase.ValidateResult, error)
}

func (s *validateServiceStub) ValidateCard(ctx context.Context, number string) (usecase.ValidateResult, error) {
	return s.fn(ctx, number)
}

type interestServiceStub struct {
	fn func(ctx context.Context, number string, customBalance *decimal.Decimal) (usecase.InterestOutput, error)
}

func (s *interestServiceStub) CalculateInterest(ctx context.Context, number string, customBalance *decimal.Decimal) (usecase.InterestOutput, error) {
	return s.fn(ctx, number, customBalance)
}

type statementServiceStub struct {
	fn func(ctx context.Context, number, format string) (usecase.StatementOutput, error)
}

func (s *statementServiceStub) GenerateStatement(ctx context.Context, number, format string) (usecase.StatementOutput, error) {
	return s.fn(ctx, number, format)
}

type listServiceStub struct {
	fn func(ctx context.Context) (usecase.ListOutput, error)
}

func (s *listServiceStub) ListCards(ctx context.Context) (usecase.ListOutput, error) {
	return s.fn(ctx)
}

func newCardHandler(validate *validateServiceStub, interest *interestServiceStub, statement *statementServiceStub, list *listServiceStub) *CardHandler {
	if validate == nil {
		validate = &validateServiceStub{fn: func(ctx context.Context, number string) (usecase.ValidateResult, error) {
			return usecase.ValidateResult{}, nil
		}}
	}
	if interest == nil {
		interest = &interestServiceStub{fn: func(ctx context.Context, number string, customBalance *decimal.Decimal) (usecase.InterestOutput, error) {
			return usecase.InterestOutput{}, nil
		}}
	}
	if statement == nil {
		statement = &statementServiceStub{fn: func(ctx context.Context, number, format string) (usecase.StatementOutput, error) {
			return usecase.StatementOutput{}, nil
		}}
	}
	if list == nil {
		list = &listServiceStub{fn: func(ctx context.Context) (usecase.ListOutput, error) {
			return usecase.ListOutput{}, nil
		}}
	}
	return NewCardHandler(validate, interest, statement, list)
}

func TestCardHandler_Validate_Success(t *testing.T) {
	handler := newCardHandler(&validateServiceStub{
		fn: func(ctx context.Context, number string) (usecase.ValidateResult, error) {
			return usecase.ValidateResult{
				Valid:        true,
				MaskedNumber: "4532-****-****-0366",
				CardType:     domain.CardTypeVisa,
				Method:       usecase.MethodCobol,
			}, nil
		},
	}, nil, nil, nil)

	body, _ := json.Marshal(dto.ValidateRequest{CardNumber: "4532015112830366"})
	req := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Validate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ValidateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Valid {
		t.Error("expected valid=true")
	}
	if resp.CardNumber != "4532-****-****-0366" {
		t.Errorf("expected masked number, got %s", resp.CardNumber)
	}
	if resp.ValidationMethod != "cobol" {
		t.Errorf("expected validationMethod cobol, got %s", resp.ValidationMethod)
	}
}

func TestCardHandler_Validate_InvalidJSON(t *testing.T) {
	handler := newCardHandler(&validateServiceStub{
		fn: func(ctx context.Context, number string) (usecase.ValidateResult, error) {
			t.Fatal("ValidateCard should not be called for invalid payload")
			return usecase.ValidateResult{}, nil
		},
	}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Validate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCardHandler_Validate_BadNumber(t *testing.T) {
	handler := newCardHandler(&validateServiceStub{
		fn: func(ctx context.Context, number string) (usecase.ValidateResult, error) {
			return usecase.ValidateResult{}, domain.ErrInvalidCardNumber
		},
	}, nil, nil, nil)

	body, _ := json.Marshal(dto.ValidateRequest{CardNumber: "not-a-card"})
	req := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Validate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != "INVALID_FORMAT" {
		t.Errorf("expected code INVALID_FORMAT, got %s", resp.Code)
	}
}

func TestCardHandler_CalculateInterest_Success(t *testing.T) {
	var capturedBalance *decimal.Decimal
	handler := newCardHandler(nil, &interestServiceStub{
		fn: func(ctx context.Context, number string, customBalance *decimal.Decimal) (usecase.InterestOutput, error) {
			capturedBalance = customBalance
			return usecase.InterestOutput{
				InterestResult: domain.InterestResult{
					CurrentBalance: decimal.RequireFromString("2500.00"),
					APR:            decimal.RequireFromString("18.99"),
					MonthlyRate:    decimal.RequireFromString("1.58"),
					InterestCharge: decimal.RequireFromString("39.56"),
					NewBalance:     decimal.RequireFromString("2539.56"),
				},
				Method: usecase.MethodInternal,
			}, nil
		},
	}, nil, nil)

	override := decimal.RequireFromString("2500.00")
	body, _ := json.Marshal(dto.InterestRequest{CardNumber: "4532015112830366", CustomBalance: &override})
	req := httptest.NewRequest(http.MethodPost, "/api/calculate-interest", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CalculateInterest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedBalance == nil || !capturedBalance.Equal(override) {
		t.Errorf("expected custom balance to be forwarded, got %v", capturedBalance)
	}

	var resp dto.InterestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.InterestCharge.Equal(decimal.RequireFromString("39.56")) {
		t.Errorf("interestCharge = %s, want 39.56", resp.InterestCharge)
	}
	if resp.CalculationMethod != "internal" {
		t.Errorf("expected calculationMethod internal, got %s", resp.CalculationMethod)
	}
}

func TestCardHandler_CalculateInterest_NotFound(t *testing.T) {
	handler := newCardHandler(nil, &interestServiceStub{
		fn: func(ctx context.Context, number string, customBalance *decimal.Decimal) (usecase.InterestOutput, error) {
			return usecase.InterestOutput{}, domain.ErrCardNotFound
		},
	}, nil, nil)

	body, _ := json.Marshal(dto.InterestRequest{CardNumber: "9999999999999999"})
	req := httptest.NewRequest(http.MethodPost, "/api/calculate-interest", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CalculateInterest(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != "CARD_NOT_FOUND" {
		t.Errorf("expected code CARD_NOT_FOUND, got %s", resp.Code)
	}
}

func TestCardHandler_CalculateInterest_ExternalFailure(t *testing.T) {
	handler := newCardHandler(nil, &interestServiceStub{
		fn: func(ctx context.Context, number string, customBalance *decimal.Decimal) (usecase.InterestOutput, error) {
			return usecase.InterestOutput{}, domain.ErrExternalProcess
		},
	}, nil, nil)

	body, _ := json.Marshal(dto.InterestRequest{CardNumber: "4532015112830366"})
	req := httptest.NewRequest(http.MethodPost, "/api/calculate-interest", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CalculateInterest(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != "COBOL_ERROR" {
		t.Errorf("expected code COBOL_ERROR, got %s", resp.Code)
	}
}

func TestCardHandler_GenerateStatement_JSON(t *testing.T) {
	statement := &domain.Statement{
		StatementDate:   "2024-03-15",
		CardNumber:      "4532-****-****-0366",
		CardholderName:  "John Smith",
		CurrentBalance:  decimal.RequireFromString("2500.00"),
		CreditLimit:     decimal.RequireFromString("5000.00"),
		AvailableCredit: decimal.RequireFromString("2500.00"),
		APR:             decimal.RequireFromString("18.99"),
		MinimumPayment:  decimal.RequireFromString("75.00"),
		DueDate:         "2024-04-09",
	}

	handler := newCardHandler(nil, nil, &statementServiceStub{
		fn: func(ctx context.Context, number, format string) (usecase.StatementOutput, error) {
			return usecase.StatementOutput{Statement: statement, Method: usecase.MethodInternal}, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.StatementRequest{CardNumber: "4532015112830366", Format: "json"})
	req := httptest.NewRequest(http.MethodPost, "/api/generate-statement", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.GenerateStatement(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.StatementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.DueDate != "2024-04-09" {
		t.Errorf("dueDate = %s, want 2024-04-09", resp.DueDate)
	}
	if resp.GenerationMethod != "internal" {
		t.Errorf("expected generationMethod internal, got %s", resp.GenerationMethod)
	}
}

func TestCardHandler_GenerateStatement_Text(t *testing.T) {
	const artifact = "CREDIT CARD STATEMENT\nCard: 4532-****-****-0366\n"

	handler := newCardHandler(nil, nil, &statementServiceStub{
		fn: func(ctx context.Context, number, format string) (usecase.StatementOutput, error) {
			return usecase.StatementOutput{Text: artifact, Method: usecase.MethodCobol}, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.StatementRequest{CardNumber: "4532015112830366", Format: "text"})
	req := httptest.NewRequest(http.MethodPost, "/api/generate-statement", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.GenerateStatement(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %s, want text/plain", ct)
	}
	if rec.Header().Get("X-Generation-Method") != "cobol" {
		t.Errorf("expected X-Generation-Method cobol, got %s", rec.Header().Get("X-Generation-Method"))
	}
	if rec.Body.String() != artifact {
		t.Errorf("expected the raw artifact body, got %q", rec.Body.String())
	}
}

func TestCardHandler_GenerateStatement_UnknownFormat(t *testing.T) {
	handler := newCardHandler(nil, nil, &statementServiceStub{
		fn: func(ctx context.Context, number, format string) (usecase.StatementOutput, error) {
			return usecase.StatementOutput{}, domain.ErrInvalidFormat
		},
	}, nil)

	body, _ := json.Marshal(dto.StatementRequest{CardNumber: "4532015112830366", Format: "pdf"})
	req := httptest.NewRequest(http.MethodPost, "/api/generate-statement", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.GenerateStatement(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCardHandler_List_Success(t *testing.T) {
	limit := decimal.RequireFromString("5000.00")
	handler := newCardHandler(nil, nil, nil, &listServiceStub{
		fn: func(ctx context.Context) (usecase.ListOutput, error) {
			return usecase.ListOutput{
				Cards: []domain.CardSummary{
					{
						CardNumber:     "4532-****-****-0366",
						CardholderName: "John Smith",
						Balance:        decimal.RequireFromString("2500.00"),
						CreditLimit:    &limit,
					},
				},
				Method: usecase.MethodInternal,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ListCardsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(resp.Cards))
	}
	if resp.Cards[0].CardNumber != "4532-****-****-0366" {
		t.Errorf("expected masked number, got %s", resp.Cards[0].CardNumber)
	}
	if resp.RetrievalMethod != "internal" {
		t.Errorf("expected retrievalMethod internal, got %s", resp.RetrievalMethod)
	}
}

func TestCardHandler_List_StoreError(t *testing.T) {
	handler := newCardHandler(nil, nil, nil, &listServiceStub{
		fn: func(ctx context.Context) (usecase.ListOutput, error) {
			return usecase.ListOutput{}, domain.ErrStoreIO
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != "SERVER_ERROR" {
		t.Errorf("expected code SERVER_ERROR, got %s", resp.Code)
	}
}
