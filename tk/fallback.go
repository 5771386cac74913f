package tk

import (
	"errors"

	"github.com/indigo-web/facets/http/status"
	"github.com/indigo-web/facets/rq"
	"github.com/indigo-web/facets/rs"
)

// Fallback never fails: an error returned by the wrapped take is turned into a response.
// status.HTTPError keeps its code and message, anything else becomes a bare 500.
func Fallback(take Take) Take {
	return Func(func(request rq.Request) (rs.Response, error) {
		resp, err := take.Act(request)
		if err == nil {
			return resp, nil
		}

		return Failure(err), nil
	})
}

// Failure renders the error as a text/plain response.
func Failure(err error) rs.Response {
	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		if resp, err := rs.Status(httpErr.Code); err == nil {
			return rs.Must(rs.Text(rs.WithBody(resp, httpErr.Message)))
		}
	}

	return rs.Must(rs.Status(status.InternalServerError))
}
