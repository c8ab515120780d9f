package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"dinebot/models"
)

var validCities = []string{"new york"}

var validCuisines = []string{
	"italian", "thai", "american", "chinese",
	"indian", "caribbean", "korean", "mexican",
}

func isValidCity(city string) bool {
	for _, c := range validCities {
		if strings.EqualFold(city, c) {
			return true
		}
	}
	return false
}

func isValidCuisine(cuisine string) bool {
	for _, c := range validCuisines {
		if strings.EqualFold(cuisine, c) {
			return true
		}
	}
	return false
}

func invalidSlot(slot, message string) models.ValidationResult {
	return models.ValidationResult{ViolatedSlot: slot, Message: message}
}

// ValidateReservation checks the filled slots in fixed order and returns the
// first violation found. Absent slots are never flagged; eliciting them is the
// controller's job, not the validator's.
func ValidateReservation(slots models.ReservationSlots) models.ValidationResult {
	if slots.Location != "" && !isValidCity(slots.Location) {
		return invalidSlot(models.SlotLocation, fmt.Sprintf(
			"We currently do not support %s as a valid destination. We are currently only supporting New York as a city.",
			slots.Location,
		))
	}

	if slots.Cuisine != "" && !isValidCuisine(slots.Cuisine) {
		return invalidSlot(models.SlotCuisine,
			"We currently only support Italian, Thai, Chinese, Indian, Korean, Caribbean, Mexican and American cuisines. Can you choose from one of these?")
	}

	if slots.DiningTime != "" {
		if vr, ok := validateDiningTime(slots.DiningTime); !ok {
			return vr
		}
	}

	if slots.NumPeople != "" {
		n, err := strconv.Atoi(slots.NumPeople)
		if err != nil || n < 1 || n > 20 {
			return invalidSlot(models.SlotNumPeople,
				"You can host only between 1 to 20 people. Can you provide the valid value in this range?")
		}
	}

	if slots.PhoneNum != "" && !isValidPhone(slots.PhoneNum) {
		return invalidSlot(models.SlotPhoneNum,
			"Please enter a valid 10 digit phone number in the format 1234567890.")
	}

	return models.ValidationResult{IsValid: true}
}

// validateDiningTime accepts exactly HH:MM with an hour inside the 10:00-22:00
// service window. A malformed string and an out-of-window hour are distinct
// violations with their own prompts.
func validateDiningTime(t string) (models.ValidationResult, bool) {
	formatErr := invalidSlot(models.SlotDiningTime, "Invalid time format, please use HH:MM format.")

	if len(t) != 5 {
		return formatErr, false
	}
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return formatErr, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return formatErr, false
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return formatErr, false
	}

	if hour < 10 || hour > 22 {
		return invalidSlot(models.SlotDiningTime, "You can dine in from 10am. to 10pm only."), false
	}
	return models.ValidationResult{}, true
}

func isValidPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
