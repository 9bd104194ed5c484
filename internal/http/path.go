package http

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Placeholders returns the placeholder names of a path template in order.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		names = append(names, match[1])
	}

	return names
}

// ExpandPath substitutes every {name} placeholder in template with the
// percent-encoded value from params. Placeholders are checked in template
// order; the first one whose value is missing or blank after trimming yields
// a *mgmt.ClientError with the message "<name> cannot be empty".
func ExpandPath(template string, params map[string]string) (string, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	var builder strings.Builder

	last := 0

	for _, match := range matches {
		name := template[match[2]:match[3]]
		value := params[name]

		err := validation.Validate(strings.TrimSpace(value), validation.Required.Error(name+" cannot be empty"))
		if err != nil {
			return "", &mgmt.ClientError{
				Code:    constants.CodeInvalidPathParam,
				Param:   name,
				Message: err.Error(),
				Cause:   err,
			}
		}

		builder.WriteString(template[last:match[0]])
		builder.WriteString(url.PathEscape(value))

		last = match[1]
	}

	builder.WriteString(template[last:])

	return builder.String(), nil
}
