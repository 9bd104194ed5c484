package client

import (
	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
)

// emptyBody is sent by create operations whose only inputs are path parameters.
var emptyBody = struct{}{}

func projectParams(projectSlug string) map[string]string {
	return map[string]string{
		constants.ParamProjectSlug: projectSlug,
	}
}

func environmentParams(projectSlug, environmentSlug string) map[string]string {
	return map[string]string{
		constants.ParamProjectSlug:     projectSlug,
		constants.ParamEnvironmentSlug: environmentSlug,
	}
}

// withParam returns params extended with one more path parameter.
func withParam(params map[string]string, name, value string) map[string]string {
	params[name] = value

	return params
}
