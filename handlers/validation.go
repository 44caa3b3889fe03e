// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"nidhi-server/apperr"

	"github.com/nyaruka/phonenumbers"
)

// Field shape contract for registration and bank-details payloads. Patterns
// follow the upstream KYC formats: 6-digit pincode, 10-digit mobile number,
// 12-digit Aadhar, PAN ABCDE1234F, IFSC ABCD0123456.
var (
	pincodeRegexp = regexp.MustCompile(`^\d{6}$`)
	phoneRegexp   = regexp.MustCompile(`^\d{10}$`)
	aadharRegexp  = regexp.MustCompile(`^\d{12}$`)
	panRegexp     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscRegexp    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	accountRegexp = regexp.MustCompile(`^\d{9,18}$`)
)

const phoneRegion = "IN"

func lengthBetween(s string, min, max int) bool {
	n := len([]rune(s))
	return n >= min && n <= max
}

// ageAt computes full years elapsed since dob, counting a year only once the
// birthday has passed.
func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if dob.AddDate(age, 0, 0).After(now) {
		age--
	}
	return age
}

func parseDateOfBirth(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// validateRegistration checks every registration field and returns the
// parsed date of birth. All failing-field messages are joined into a single
// validation error, matching the request-validator contract.
func validateRegistration(req *RegisterRequest) (time.Time, error) {
	var msgs []string
	var dob time.Time

	req.FullName = strings.TrimSpace(req.FullName)
	req.FatherName = strings.TrimSpace(req.FatherName)
	req.City = strings.TrimSpace(req.City)
	req.State = strings.TrimSpace(req.State)
	req.CurrentAddress = strings.TrimSpace(req.CurrentAddress)
	req.Pincode = strings.TrimSpace(req.Pincode)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.AadharNumber = strings.TrimSpace(req.AadharNumber)
	req.PANNumber = strings.ToUpper(strings.TrimSpace(req.PANNumber))

	if !lengthBetween(req.FullName, 2, 100) {
		msgs = append(msgs, "Full name must be between 2 and 100 characters")
	}
	if !lengthBetween(req.FatherName, 2, 100) {
		msgs = append(msgs, "Father name must be between 2 and 100 characters")
	}
	if !lengthBetween(req.City, 2, 50) {
		msgs = append(msgs, "City must be between 2 and 50 characters")
	}
	if !lengthBetween(req.State, 2, 50) {
		msgs = append(msgs, "State must be between 2 and 50 characters")
	}
	if !lengthBetween(req.CurrentAddress, 5, 200) {
		msgs = append(msgs, "Current address must be between 5 and 200 characters")
	}
	if !pincodeRegexp.MatchString(req.Pincode) {
		msgs = append(msgs, "Pincode must be exactly 6 digits")
	}
	if !phoneRegexp.MatchString(req.PhoneNumber) {
		msgs = append(msgs, "Phone number must be exactly 10 digits")
	} else if num, err := phonenumbers.Parse(req.PhoneNumber, phoneRegion); err != nil || !phonenumbers.IsValidNumber(num) {
		msgs = append(msgs, "Phone number is not a valid mobile number")
	}
	if _, err := mail.ParseAddress(req.Email); req.Email == "" || err != nil {
		msgs = append(msgs, "Please provide a valid email address")
	}
	if !aadharRegexp.MatchString(req.AadharNumber) {
		msgs = append(msgs, "Aadhar number must be exactly 12 digits")
	}
	if !panRegexp.MatchString(req.PANNumber) {
		msgs = append(msgs, "PAN number must be in format: ABCDE1234F")
	}
	if parsed, err := parseDateOfBirth(strings.TrimSpace(req.DateOfBirth)); err != nil {
		msgs = append(msgs, "Date of birth must be a valid date")
	} else if ageAt(parsed, time.Now()) < 18 {
		msgs = append(msgs, "User must be at least 18 years old")
	} else {
		dob = parsed
	}
	if len([]rune(req.Password)) < 8 {
		msgs = append(msgs, "Password must be at least 8 characters long")
	}
	if req.ReferralID != nil {
		trimmed := strings.TrimSpace(*req.ReferralID)
		req.ReferralID = &trimmed
		if trimmed == "" {
			msgs = append(msgs, "Referral ID cannot be empty if provided")
		}
	}
	if req.NomineeName != nil {
		trimmed := strings.TrimSpace(*req.NomineeName)
		req.NomineeName = &trimmed
		if !lengthBetween(trimmed, 2, 100) {
			msgs = append(msgs, "Nominee name must be between 2 and 100 characters")
		}
	}
	if req.NomineeRelation != nil {
		trimmed := strings.TrimSpace(*req.NomineeRelation)
		req.NomineeRelation = &trimmed
		if !lengthBetween(trimmed, 2, 50) {
			msgs = append(msgs, "Nominee relation must be between 2 and 50 characters")
		}
	}

	if len(msgs) > 0 {
		return time.Time{}, apperr.New(apperr.Validation, strings.Join(msgs, ", "))
	}
	return dob, nil
}

func validateLogin(req *LoginRequest) error {
	var msgs []string
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(req.Email); req.Email == "" || err != nil {
		msgs = append(msgs, "Please provide a valid email address")
	}
	if strings.TrimSpace(req.Password) == "" {
		msgs = append(msgs, "Password is required")
	}
	if len(msgs) > 0 {
		return apperr.New(apperr.Validation, strings.Join(msgs, ", "))
	}
	return nil
}

// validateBankDetails normalizes the IFSC to upper case before matching so a
// lowercase code passes and is stored uppercased.
func validateBankDetails(req *BankDetailsRequest) error {
	var msgs []string

	req.BankName = strings.TrimSpace(req.BankName)
	req.AccountHolderName = strings.TrimSpace(req.AccountHolderName)
	req.IFSC = strings.ToUpper(strings.TrimSpace(req.IFSC))
	req.BranchName = strings.TrimSpace(req.BranchName)
	req.AccountNumber = strings.TrimSpace(req.AccountNumber)

	if !lengthBetween(req.BankName, 2, 100) {
		msgs = append(msgs, "Bank name must be between 2 and 100 characters")
	}
	if !lengthBetween(req.AccountHolderName, 2, 100) {
		msgs = append(msgs, "Account holder name must be between 2 and 100 characters")
	}
	if !ifscRegexp.MatchString(req.IFSC) {
		msgs = append(msgs, "IFSC code must be in format: ABCD0123456")
	}
	if !lengthBetween(req.BranchName, 2, 100) {
		msgs = append(msgs, "Branch name must be between 2 and 100 characters")
	}
	if !accountRegexp.MatchString(req.AccountNumber) {
		msgs = append(msgs, "Account number must be between 9 and 18 digits")
	}

	if len(msgs) > 0 {
		return apperr.New(apperr.Validation, strings.Join(msgs, ", "))
	}
	return nil
}
