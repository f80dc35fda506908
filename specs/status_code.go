package specs

import "strconv"

// Status is one of the response statuses a Response can carry.
type Status uint8

const (
	StatusOk Status = iota
	StatusSeeOther
	StatusBadRequest
	StatusUnauthorized
	StatusForbidden
	StatusNotFound
	StatusNotAllowed
	StatusInternalServerError
)

// Statuses lists every supported Status in code order.
var Statuses = [...]Status{
	StatusOk,
	StatusSeeOther,
	StatusBadRequest,
	StatusUnauthorized,
	StatusForbidden,
	StatusNotFound,
	StatusNotAllowed,
	StatusInternalServerError,
}

// StatusFromCode resolves a numeric code back to its Status.
func StatusFromCode(code uint16) (Status, error) {
	for _, status := range Statuses {
		if status.Code() == code {
			return status, nil
		}
	}
	return 0, ErrInvalidCode
}

// Code returns the numeric status code, or 0 for an undeclared status.
func (status Status) Code() uint16 {
	switch status {
	case StatusOk:
		return 200
	case StatusSeeOther:
		return 303
	case StatusBadRequest:
		return 400
	case StatusUnauthorized:
		return 401
	case StatusForbidden:
		return 403
	case StatusNotFound:
		return 404
	case StatusNotAllowed:
		return 405
	case StatusInternalServerError:
		return 500
	}
	return 0
}

// Message returns the uppercase reason phrase.
func (status Status) Message() string {
	switch status {
	case StatusOk:
		return "OK"
	case StatusSeeOther:
		return "SEE OTHER"
	case StatusBadRequest:
		return "BAD REQUEST"
	case StatusUnauthorized:
		return "UNAUTHORIZED"
	case StatusForbidden:
		return "FORBIDDEN"
	case StatusNotFound:
		return "NOT FOUND"
	case StatusNotAllowed:
		return "NOT ALLOWED"
	case StatusInternalServerError:
		return "INTERNAL SERVER ERROR"
	}
	return ""
}

// IsValid reports whether status is one of the declared statuses.
func (status Status) IsValid() bool {
	return status <= StatusInternalServerError
}

// IsRedirect reports whether the status points the client elsewhere.
func (status Status) IsRedirect() bool {
	return status == StatusSeeOther
}

// Formatted renders the status line tail, e.g. "404 NOT FOUND".
func (status Status) Formatted() []byte {
	buf := strconv.AppendUint(nil, uint64(status.Code()), 10)
	buf = append(buf, ' ')
	return append(buf, status.Message()...)
}

func (status Status) String() string {
	return string(status.Formatted())
}
