// Package phone normalizes academy contact numbers and builds the outbound
// chat, call and voice-chat links derived from them.
package phone

import (
	"log/slog"
	"net/url"
	"strings"
)

const (
	CountryCode  = "966"
	trunkPrefix  = "0"
	mobilePrefix = "5"

	// expected digit count of a normalized number, country code included
	normalizedLen = 12

	// EmptyLink is returned instead of a URL when the number cannot be normalized.
	EmptyLink = "#"

	chatBaseURL      = "https://wa.me/"
	callScheme       = "tel:"
	voiceChatBaseURL = "viber://chat?number="
)

const (
	enrollmentMessage        = "مرحباً، أريد التسجيل في دورة: "
	generalInquiryMessage    = "مرحباً، أريد الاستفسار عن دورات الرسم في أكاديمية ميمو"
	instructorContactMessage = "مرحباً، أريد التواصل مع المدرب "
)

// Normalize strips everything but digits and returns the number in canonical
// international form (966XXXXXXXXX). Input without digits yields "".
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return ""
	}

	if strings.HasPrefix(cleaned, trunkPrefix) {
		cleaned = CountryCode + cleaned[len(trunkPrefix):]
	}

	if !strings.HasPrefix(cleaned, CountryCode) {
		cleaned = CountryCode + cleaned
	}

	return cleaned
}

// Format renders a normalized number as "+966 50 123 4567". Numbers of an
// unexpected length are returned exactly as given.
func Format(raw string) string {
	n := Normalize(raw)
	if len(n) != normalizedLen {
		return raw
	}

	return "+" + n[0:3] + " " + n[3:5] + " " + n[5:8] + " " + n[8:]
}

// ChatLink builds a wa.me link, appending the trimmed message as the text
// parameter when it is not blank.
func ChatLink(raw, message string) string {
	n := Normalize(raw)
	if n == "" {
		slog.Warn("invalid chat phone number", slog.String("phone", raw))
		return EmptyLink
	}

	link := chatBaseURL + n

	if msg := strings.TrimSpace(message); msg != "" {
		link += "?text=" + encodeComponent(msg)
	}

	return link
}

// CallLink builds a tel: link using the display form of the number.
func CallLink(raw string) string {
	if Normalize(raw) == "" {
		return EmptyLink
	}

	return callScheme + Format(raw)
}

func VoiceChatLink(raw string) string {
	n := Normalize(raw)
	if n == "" {
		return EmptyLink
	}

	return voiceChatBaseURL + n
}

// IsValidLocalMobile reports whether raw is a 12 digit 966 number whose
// national part is a mobile number.
func IsValidLocalMobile(raw string) bool {
	n := Normalize(raw)

	if len(n) != normalizedLen || !strings.HasPrefix(n, CountryCode) {
		return false
	}

	return strings.HasPrefix(n[len(CountryCode):], mobilePrefix)
}

func CourseEnrollmentLink(raw, courseTitle string) string {
	return ChatLink(raw, enrollmentMessage+courseTitle)
}

func GeneralInquiryLink(raw string) string {
	return ChatLink(raw, generalInquiryMessage)
}

func InstructorContactLink(raw, instructorName string) string {
	return ChatLink(raw, instructorContactMessage+instructorName)
}

// IsChatEnrollment reports whether an enrollment target means "ask on the chat
// app" rather than an external URL: empty values and in-page anchors.
func IsChatEnrollment(enrollmentURL string) bool {
	u := strings.TrimSpace(enrollmentURL)

	return u == "" || strings.HasPrefix(u, "#")
}

// EnrollmentTarget resolves where the enroll button of a course points.
func EnrollmentTarget(raw, enrollmentURL, courseTitle string) string {
	if IsChatEnrollment(enrollmentURL) {
		return CourseEnrollmentLink(raw, courseTitle)
	}

	return strings.TrimSpace(enrollmentURL)
}

// QueryEscape also escapes the marks encodeURIComponent leaves alone.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes s the way browsers' encodeURIComponent does.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
