// SPDX-License-Identifier: GPL-3.0-only

package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"nidhi-server/handlers"
)

func registerForToken(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := doRequest(e, http.MethodPost, "/api/users/register", registerBody(t, nil), "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("Registration failed: %d: %s", rec.Code, rec.Body.String())
	}
	return decodeAuthResponse(t, rec).Token
}

func bankDetailsBody(t *testing.T, overrides map[string]any) []byte {
	t.Helper()
	payload := map[string]any{
		"bankName":          "State Bank of India",
		"accountHolderName": "Rohan Sharma",
		"ifsc":              "SBIN0001234",
		"branchName":        "Fort Branch",
		"accountNumber":     "123456789012",
	}
	for k, v := range overrides {
		payload[k] = v
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal bank details payload: %v", err)
	}
	return body
}

func decodeBankDetails(t *testing.T, body []byte) handlers.BankDetailsResponse {
	t.Helper()
	var resp handlers.BankDetailsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to decode bank details response: %v", err)
	}
	return resp
}

func TestAddBankDetails(t *testing.T) {
	e, _, _ := newTestServer(t)
	token := registerForToken(t, e)

	rec := doRequest(e, http.MethodPost, "/api/users/bank-details", bankDetailsBody(t, nil), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBankDetails(t, rec.Body.Bytes())
	if resp.IFSC != "SBIN0001234" {
		t.Errorf("Expected IFSC SBIN0001234, got %s", resp.IFSC)
	}
	if resp.AccountNumber != "123456789012" {
		t.Errorf("Expected account number 123456789012, got %s", resp.AccountNumber)
	}
}

func TestAddBankDetailsNormalizesIFSC(t *testing.T) {
	e, _, _ := newTestServer(t)
	token := registerForToken(t, e)

	body := bankDetailsBody(t, map[string]any{"ifsc": "abcd0123456"})
	rec := doRequest(e, http.MethodPost, "/api/users/bank-details", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBankDetails(t, rec.Body.Bytes())
	if resp.IFSC != "ABCD0123456" {
		t.Errorf("Expected IFSC normalized to ABCD0123456, got %s", resp.IFSC)
	}
}

func TestAddBankDetailsTwice(t *testing.T) {
	e, _, _ := newTestServer(t)
	token := registerForToken(t, e)

	rec := doRequest(e, http.MethodPost, "/api/users/bank-details", bankDetailsBody(t, nil), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("First add failed: %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/users/bank-details", bankDetailsBody(t, nil), token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for second add, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Bank details already exist. Use update endpoint instead." {
		t.Errorf("Expected already-exists message, got %q", msg)
	}
}

func TestUpdateBankDetailsBeforeAdd(t *testing.T) {
	e, _, _ := newTestServer(t)
	token := registerForToken(t, e)

	rec := doRequest(e, http.MethodPut, "/api/users/bank-details", bankDetailsBody(t, nil), token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for update before add, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Bank details not found. Use add endpoint instead." {
		t.Errorf("Expected not-found message, got %q", msg)
	}
}

func TestUpdateBankDetails(t *testing.T) {
	e, _, _ := newTestServer(t)
	token := registerForToken(t, e)

	rec := doRequest(e, http.MethodPost, "/api/users/bank-details", bankDetailsBody(t, nil), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Add failed: %d", rec.Code)
	}
	created := decodeBankDetails(t, rec.Body.Bytes())

	update := bankDetailsBody(t, map[string]any{
		"bankName": "HDFC Bank",
		"ifsc":     "hdfc0005678",
	})
	rec = doRequest(e, http.MethodPut, "/api/users/bank-details", update, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBankDetails(t, rec.Body.Bytes())
	if resp.ID != created.ID {
		t.Errorf("Update must overwrite the existing record, got id %d want %d", resp.ID, created.ID)
	}
	if resp.BankName != "HDFC Bank" {
		t.Errorf("Expected bank name HDFC Bank, got %s", resp.BankName)
	}
	if resp.IFSC != "HDFC0005678" {
		t.Errorf("Expected IFSC normalized to HDFC0005678, got %s", resp.IFSC)
	}
}

func TestBankDetailsInvalidAccountNumber(t *testing.T) {
	e, _, _ := newTestServer(t)
	token := registerForToken(t, e)

	body := bankDetailsBody(t, map[string]any{"accountNumber": "12345678"})
	rec := doRequest(e, http.MethodPost, "/api/users/bank-details", body, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for 8-digit account number, got %d", rec.Code)
	}
}
