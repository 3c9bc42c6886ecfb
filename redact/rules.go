package redact

import "regexp"

var emailRule = Rule{
	Name:        "email",
	Pattern:     regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	Placeholder: "[email]",
}

// phoneRule matches Dutch numbers (06-12345678, +31 6 1234 5678) and generic
// international formats.
var phoneRule = Rule{
	Name:        "phone",
	Pattern:     regexp.MustCompile(`(\+31|0)[\s-]?6[\s-]?\d{2}[\s-]?\d{2}[\s-]?\d{2}[\s-]?\d{2}|\+\d{1,3}[\s-]?\d{2,4}[\s-]?\d{3,4}[\s-]?\d{3,4}`),
	Placeholder: "[phone]",
}

var handleRule = Rule{
	Name:        "handle",
	Pattern:     regexp.MustCompile(`@[a-zA-Z0-9_]{2,}`),
	Placeholder: "[handle]",
}
