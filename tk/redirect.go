package tk

import (
	"github.com/indigo-web/facets/http/status"
	"github.com/indigo-web/facets/rs"
)

// Redirect always redirects to the location. See rs.Redirect for the code semantics.
func Redirect(location string, code ...status.Code) (Take, error) {
	resp, err := rs.Redirect(location, code...)
	if err != nil {
		return nil, err
	}

	return Fixed(resp), nil
}
