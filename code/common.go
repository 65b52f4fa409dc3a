package code

type Code uint32

/*
error code description: 4(placeholder) 000-999(service) 00000-99999(code)
400000000 -> 400099999: common codes
400100000 -> 400199999: identity codes, see identity.go
400200000 -> 400299999: spreadsheet store codes, see store.go
*/

const (
	InvalidArgument Code = 400000000
	NotFoundError   Code = 400000001
	InternalError   Code = 400000002
	UnknownError    Code = 400099999
)

func (c Code) String() string {
	switch c {
	case InvalidArgument:
		return "invalid argument"
	case NotFoundError:
		return "not found"
	case InternalError:
		return "internal error"
	default:
		return "unknown error"
	}
}
