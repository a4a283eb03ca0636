package services

// Toast texts shown by the facade.
const (
	MsgRegistered     = "Registration completed!"
	MsgEmailTaken     = "E-mail already registered!"
	MsgInvalidData    = "Invalid registration data"
	MsgUnavailable    = "Server unavailable, try again later"
	MsgLoggedIn       = "Login successful!"
	MsgBadCredentials = "Incorrect e-mail or password!"
)

func registerMessage(r Reason) string {
	switch r {
	case ReasonValidation:
		return MsgInvalidData
	case ReasonUnavailable:
		return MsgUnavailable
	default:
		return MsgEmailTaken
	}
}

func loginMessage(r Reason) string {
	if r == ReasonUnavailable {
		return MsgUnavailable
	}
	return MsgBadCredentials
}
