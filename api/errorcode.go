package api

import (
	"github.com/civictrack/civictrack-api/intake"
	"github.com/civictrack/civictrack-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "invalid credentials",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1200: intake.ErrInvalidInput.Error(),
		1201: intake.ErrPolicyViolation.Error(),
		1202: "this issue may have already been reported",
		1203: intake.ErrUploadFailed.Error(),
		1204: store.ErrReportNotFound.Error(),
		1205: "invalid status value",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorInvalidCredentials         = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorInvalidInput    = errorJSON(1200)
	errorPolicyViolation = errorJSON(1201)
	errorDuplicateReport = errorJSON(1202)
	errorUploadFailed    = errorJSON(1203)
	errorReportNotFound  = errorJSON(1204)
	errorInvalidStatus   = errorJSON(1205)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
