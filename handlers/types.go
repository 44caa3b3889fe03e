// SPDX-License-Identifier: GPL-3.0-only

package handlers

import "time"

// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full legal name
	// required: true
	FullName string `json:"fullName" example:"Rohan Sharma"`
	// Father's name
	// required: true
	FatherName string `json:"fatherName" example:"Suresh Sharma"`
	// City of residence
	// required: true
	City string `json:"city" example:"Mumbai"`
	// State of residence
	// required: true
	State string `json:"state" example:"Maharashtra"`
	// Current postal address
	// required: true
	CurrentAddress string `json:"currentAddress" example:"14 Marine Drive, Mumbai"`
	// 6-digit postal code
	// required: true
	Pincode string `json:"pincode" example:"400001"`
	// 10-digit mobile number
	// required: true
	PhoneNumber string `json:"phoneNumber" example:"9876543210"`
	// Email address
	// required: true
	Email string `json:"email" example:"rohan@example.com"`
	// 12-digit Aadhar number
	// required: true
	AadharNumber string `json:"aadharNumber" example:"123456789012"`
	// PAN number (ABCDE1234F)
	// required: true
	PANNumber string `json:"panNumber" example:"ABCDE1234F"`
	// Date of birth (YYYY-MM-DD)
	// required: true
	DateOfBirth string `json:"dateOfBirth" example:"1990-05-15"`
	// Referrer's user ID, must reference an existing account when present
	ReferralID *string `json:"referralId" example:"MU-400001-1234"`
	// Optional nominee name
	NomineeName *string `json:"nomineeName" example:"Priya Sharma"`
	// Optional nominee relation
	NomineeRelation *string `json:"nomineeRelation" example:"Spouse"`
	// Password, at least 8 characters
	// required: true
	Password string `json:"password" example:"MySecretPassword@123"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// Email address
	Email string `json:"email" example:"rohan@example.com"`
	// Password
	Password string `json:"password" example:"MySecretPassword@123"`
}

// swagger:model UserSummary
type UserSummary struct {
	// Surrogate account id
	ID uint `json:"id" example:"1"`
	// Derived human-readable user identifier
	UserID string `json:"userId" example:"MU-400001-3210"`
	// Full name
	FullName string `json:"fullName" example:"Rohan Sharma"`
	// Email address
	Email string `json:"email" example:"rohan@example.com"`
	// Phone number
	PhoneNumber string `json:"phoneNumber" example:"9876543210"`
}

// swagger:model AuthResponse
type AuthResponse struct {
	// Message indicating successful operation
	Message string `json:"message" example:"Login successful"`
	// Registered or authenticated user
	User UserSummary `json:"user"`
	// Signed bearer token for subsequent authenticated requests
	Token string `json:"token"`
}

// swagger:model BankDetailsRequest
type BankDetailsRequest struct {
	// Bank name
	// required: true
	BankName string `json:"bankName" example:"State Bank of India"`
	// Name on the bank account
	// required: true
	AccountHolderName string `json:"accountHolderName" example:"Rohan Sharma"`
	// IFSC branch code (ABCD0123456), normalized to upper case
	// required: true
	IFSC string `json:"ifsc" example:"SBIN0001234"`
	// Branch name
	// required: true
	BranchName string `json:"branchName" example:"Fort Branch"`
	// Account number, 9-18 digits
	// required: true
	AccountNumber string `json:"accountNumber" example:"123456789012"`
}

// swagger:model BankDetailsResponse
type BankDetailsResponse struct {
	// Record id
	ID uint `json:"id" example:"1"`
	// Bank name
	BankName string `json:"bankName" example:"State Bank of India"`
	// Name on the bank account
	AccountHolderName string `json:"accountHolderName" example:"Rohan Sharma"`
	// IFSC branch code, upper case
	IFSC string `json:"ifsc" example:"SBIN0001234"`
	// Branch name
	BranchName string `json:"branchName" example:"Fort Branch"`
	// Account number
	AccountNumber string `json:"accountNumber" example:"123456789012"`
	// Owning account's surrogate id
	UserID uint `json:"userId" example:"1"`
	// Timestamp of creation
	CreatedAt time.Time `json:"createdAt"`
	// Timestamp of last update
	UpdatedAt time.Time `json:"updatedAt"`
}

// swagger:model ProfileResponse
type ProfileResponse struct {
	// Message indicating successful retrieval
	Message string `json:"message" example:"Profile retrieved successfully"`
	// Surrogate account id
	ID uint `json:"id" example:"1"`
	// Derived human-readable user identifier
	UserID string `json:"userId" example:"MU-400001-3210"`
	// Full name
	FullName string `json:"fullName" example:"Rohan Sharma"`
	// Father's name
	FatherName string `json:"fatherName" example:"Suresh Sharma"`
	// City of residence
	City string `json:"city" example:"Mumbai"`
	// State of residence
	State string `json:"state" example:"Maharashtra"`
	// Current postal address
	CurrentAddress string `json:"currentAddress" example:"14 Marine Drive, Mumbai"`
	// 6-digit postal code
	Pincode string `json:"pincode" example:"400001"`
	// Phone number
	PhoneNumber string `json:"phoneNumber" example:"9876543210"`
	// Email address
	Email string `json:"email" example:"rohan@example.com"`
	// Aadhar number
	AadharNumber string `json:"aadharNumber" example:"123456789012"`
	// PAN number
	PANNumber string `json:"panNumber" example:"ABCDE1234F"`
	// Date of birth
	DateOfBirth time.Time `json:"dateOfBirth"`
	// Referrer's user ID
	ReferralID *string `json:"referralId"`
	// Nominee name
	NomineeName *string `json:"nomineeName"`
	// Nominee relation
	NomineeRelation *string `json:"nomineeRelation"`
	// Whether the account may log in
	IsActive bool `json:"isActive" example:"true"`
	// Timestamp of registration
	CreatedAt time.Time `json:"createdAt"`
	// Timestamp of last update
	UpdatedAt time.Time `json:"updatedAt"`
	// Bank details, null until added
	BankDetails *BankDetailsResponse `json:"bankDetails"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message"`
}
