package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const whatsAppPrefix = "whatsapp:"

// DefaultRegions are tried in order when a number carries no country code.
var DefaultRegions = []string{
	"MX",
	"US",
	"ES",
}

func NormalizePhone(phone string) string {
	return NormalizePhoneIn(phone, DefaultRegions)
}

// NormalizePhoneIn returns the E.164 form of phone, or "" when it is not a
// valid number in any of the given regions.
func NormalizePhoneIn(phone string, regions []string) string {
	phone = strings.TrimSpace(phone)
	if len(phone) >= len(whatsAppPrefix) && strings.EqualFold(phone[:len(whatsAppPrefix)], whatsAppPrefix) {
		phone = strings.TrimSpace(phone[len(whatsAppPrefix):])
	}

	if phone == "" {
		return ""
	}

	for _, region := range regions {
		parsedNumber, err := phonenumbers.Parse(phone, region)
		if err != nil || !phonenumbers.IsValidNumber(parsedNumber) {
			continue
		}
		return phonenumbers.Format(parsedNumber, phonenumbers.E164)
	}
	return ""
}

// NormalizeContact prefers the E.164 form and falls back to the cleaned input
// for contacts that are not phone numbers.
func NormalizeContact(contact string, regions []string) string {
	if phone := NormalizePhoneIn(contact, regions); phone != "" {
		return phone
	}
	return CleanText(contact)
}
