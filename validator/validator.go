package validator

import (
	"regexp"

	"taprobane/constants"
	"taprobane/errors"
)

var emailRe = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func inList(value string, list []string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// ValidateAccommodationType checks the closed type set.
func ValidateAccommodationType(t string) error {
	if !inList(t, constants.AccommodationTypes) {
		return errors.BadRequest(errors.ErrCodeValidation, "Invalid accommodation type")
	}
	return nil
}

// ValidateRegion checks the closed region set; empty is allowed.
func ValidateRegion(region string) error {
	if region == "" {
		return nil
	}
	if !inList(region, constants.Regions) {
		return errors.BadRequest(errors.ErrCodeValidation, "Invalid region")
	}
	return nil
}

// ValidateAttractionCategory checks the closed category set.
func ValidateAttractionCategory(category string) error {
	if !inList(category, constants.AttractionCategories) {
		return errors.BadRequest(errors.ErrCodeValidation, "Invalid attraction category")
	}
	return nil
}

// ValidateContactStatus checks the contact workflow statuses.
func ValidateContactStatus(status string) error {
	if !inList(status, constants.ContactStatuses) {
		return errors.BadRequest(errors.ErrCodeInvalidStatus, "Invalid status")
	}
	return nil
}

// ValidateDuration checks the guide booking duration; empty defaults to
// daily downstream.
func ValidateDuration(duration string) error {
	if duration == "" || duration == constants.DurationHourly || duration == constants.DurationDaily {
		return nil
	}
	return errors.BadRequest(errors.ErrCodeValidation, "Invalid booking duration")
}
