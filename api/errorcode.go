package api

import "github.com/wanderhub/wanderhub-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1101: store.ErrAccountNotFound.Error(),
		1104: "unknown account location",
		1105: "survey not found",

		1200: store.ErrDestinationNotFound.Error(),
		1201: store.ErrAlreadyFavorited.Error(),

		1300: "place provider error",
		1301: "assistant unavailable",
		1302: "cannot interpret conversation",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountNotFound        = errorJSON(1101)
	errorUnknownAccountLocation = errorJSON(1104)
	errorSurveyNotFound         = errorJSON(1105)

	errorUnknownDestination = errorJSON(1200)
	errorAlreadyFavorited   = errorJSON(1201)

	errorPlaceProvider        = errorJSON(1300)
	errorAssistantUnavailable = errorJSON(1301)
	errorInvalidConversation  = errorJSON(1302)
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
