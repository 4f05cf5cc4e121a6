package services

import (
	"strings"

	"github.com/mergepost/mergepost-api/libs/go/constants"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

// RenderTemplate substitutes {fieldName} placeholders in template with the
// recipient's field values. The function is pure: same inputs, same output.
//
// Matching is literal. The replacer compares tokens as exact substrings, so
// field names containing characters that a pattern engine would treat
// specially ("a.b", "x*", "(note)") behave as plain text. Replacement is a
// single pass over the template: substituted values are never rescanned, so
// a value containing "{otherField}" is inserted verbatim and not expanded
// further. Placeholders for fields absent from the recipient are left as
// literal text.
func RenderTemplate(template string, recipient business.Recipient) string {
	if template == "" {
		return template
	}

	// The email address is itself a substitutable field of the record. A
	// caller-defined field of the same name overrides its value below
	// (later write wins), without affecting the delivery address.
	order := []string{constants.EmailField}
	values := map[string]string{constants.EmailField: recipient.Email}

	for _, f := range recipient.Fields {
		if _, seen := values[f.Name]; !seen {
			order = append(order, f.Name)
		}
		values[f.Name] = f.Value
	}

	pairs := make([]string, 0, len(order)*2)
	for _, name := range order {
		pairs = append(pairs, "{"+name+"}", values[name])
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
