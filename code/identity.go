package code

/*
  400100000 -> 400199999: identity codes
*/

type IdentityCode Code

const (
	InvalidToken         IdentityCode = 400100000
	MissingToken         IdentityCode = 400100001
	UnknownIdentityError IdentityCode = 400199999
)

func (i IdentityCode) String() string {
	switch i {
	case InvalidToken:
		return "invalid token"
	case MissingToken:
		return "missing token"
	case UnknownIdentityError:
		return "unknown identity error"
	default:
		return "unknown identity error"
	}
}
