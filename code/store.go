package code

/*
  400200000 -> 400299999: spreadsheet store codes
*/

type StoreCode Code

const (
	StoreUnavailable  StoreCode = 400200000
	UnknownStoreError StoreCode = 400299999
)

func (s StoreCode) String() string {
	switch s {
	case StoreUnavailable:
		return "spreadsheet store unavailable"
	default:
		return "unknown store error"
	}
}
