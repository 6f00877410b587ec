package errors

// User-friendly error messages
const (
	MsgPropertyNotFound   = "Property not found. Please try a different property ID."
	MsgServiceUnavailable = "We're unable to retrieve property information right now. Please try again in a few minutes."
	MsgRateLimited        = "You're requesting too quickly! Please wait a moment and try again."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgInvalidLocation    = "A suburb and city are required to look up market trends."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
