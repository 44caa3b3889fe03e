// SPDX-License-Identifier: GPL-3.0-only

package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"nidhi-server/handlers"
)

func TestGetProfile(t *testing.T) {
	e, _, _ := newTestServer(t)
	token := registerForToken(t, e)

	rec := doRequest(e, http.MethodGet, "/api/users/profile", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp handlers.ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode profile response: %v", err)
	}
	if resp.UserID != "MU-400001-3210" {
		t.Errorf("Expected user ID MU-400001-3210, got %s", resp.UserID)
	}
	if resp.Email != "rohan@example.com" {
		t.Errorf("Expected registered email, got %s", resp.Email)
	}
	if resp.BankDetails != nil {
		t.Error("Bank details should be null before any are added")
	}

	// The raw body must never leak the password hash.
	var raw map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := raw["password"]; ok {
		t.Error("Profile response must not contain a password field")
	}
}

func TestGetProfileIncludesBankDetails(t *testing.T) {
	e, _, _ := newTestServer(t)
	token := registerForToken(t, e)

	rec := doRequest(e, http.MethodPost, "/api/users/bank-details", bankDetailsBody(t, nil), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Add bank details failed: %d", rec.Code)
	}

	rec = doRequest(e, http.MethodGet, "/api/users/profile", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp handlers.ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode profile response: %v", err)
	}
	if resp.BankDetails == nil {
		t.Fatal("Expected bank details in profile")
	}
	if resp.BankDetails.IFSC != "SBIN0001234" {
		t.Errorf("Expected IFSC SBIN0001234, got %s", resp.BankDetails.IFSC)
	}
}

func TestProfileRequiresToken(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/users/profile", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Bearer token is required" {
		t.Errorf("Expected missing-token message, got %q", msg)
	}
}

func TestProfileRejectsInvalidToken(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/users/profile", nil, "not-a-real-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 for garbage token, got %d", rec.Code)
	}
	msg := decodeMessage(t, rec)
	if msg != "Invalid or expired authentication token" {
		t.Errorf("Expected invalid-token message, got %q", msg)
	}
	if msg == "Bearer token is required" {
		t.Error("Invalid token must be rejected distinctly from a missing one")
	}
}

func TestHealth(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
}
