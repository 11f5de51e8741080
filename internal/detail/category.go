package detail

import "strings"

// Category is the item category code, e.g. "001" for logins.
type Category string

const (
	CategoryLogin           Category = "001"
	CategoryCreditCard      Category = "002"
	CategorySecureNote      Category = "003"
	CategoryIdentity        Category = "004"
	CategoryPassword        Category = "005"
	CategoryTombstone       Category = "099"
	CategorySoftwareLicense Category = "100"
	CategoryBankAccount     Category = "101"
	CategoryDatabase        Category = "102"
	CategoryDriverLicense   Category = "103"
	CategoryOutdoorLicense  Category = "104"
	CategoryMembership      Category = "105"
	CategoryPassport        Category = "106"
	CategoryRewards         Category = "107"
	CategorySSN             Category = "108"
	CategoryRouter          Category = "109"
	CategoryServer          Category = "110"
	CategoryEmail           Category = "111"
)

var categoryNames = map[Category]string{
	CategoryLogin:           "login",
	CategoryCreditCard:      "credit-card",
	CategorySecureNote:      "secure-note",
	CategoryIdentity:        "identity",
	CategoryPassword:        "password",
	CategoryTombstone:       "tombstone",
	CategorySoftwareLicense: "software-license",
	CategoryBankAccount:     "bank-account",
	CategoryDatabase:        "database",
	CategoryDriverLicense:   "driver-license",
	CategoryOutdoorLicense:  "outdoor-license",
	CategoryMembership:      "membership",
	CategoryPassport:        "passport",
	CategoryRewards:         "rewards",
	CategorySSN:             "ssn",
	CategoryRouter:          "router",
	CategoryServer:          "server",
	CategoryEmail:           "email",
}

// ParseCategory accepts either a numeric code ("001") or a name ("login").
func ParseCategory(s string) (Category, error) {
	if _, ok := categoryNames[Category(s)]; ok {
		return Category(s), nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return "", invalidDiscriminator("", "category", s)
}

// Validate reports an unknown category code as InvalidDiscriminator.
func (c Category) Validate() error {
	if _, ok := categoryNames[c]; !ok {
		return invalidDiscriminator("", "category", string(c))
	}
	return nil
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "unknown"
}

// Icon returns a freedesktop icon name for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryLogin, CategoryPassword:
		return "dialog-password"
	case CategoryIdentity:
		return "vcard"
	case CategoryTombstone:
		return "edit-delete"
	case CategoryDatabase:
		return "drive-multidisk"
	case CategoryEmail:
		return "mail-read"
	default:
		return "pda"
	}
}

// Detail is a decoded item detail: LoginRecord, PasswordRecord or GenericRecord.
type Detail interface {
	isDetail()
}

// DecodeDetail decodes data with the layout of the given category.
func DecodeDetail(c Category, data []byte) (Detail, error) {
	var (
		d   Detail
		err error
	)
	switch c {
	case CategoryLogin:
		d, err = DecodeLogin(data)
	case CategoryPassword:
		d, err = DecodePassword(data)
	default:
		if err := c.Validate(); err != nil {
			return nil, err
		}
		d, err = DecodeGeneric(data)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
