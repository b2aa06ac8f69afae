package user

// User is the single account installed on a device. It owns zero or more
// customers and is created once at registration.
type User struct {
	ID               string
	BusinessName     string
	OwnerName        string
	PhoneNumber      string
	WhatsappNumber   string
	LanguageCode     string
	PhotoURL         string
	BusinessCategory string
	Address          string
	CreatedAt        int64 // Unix seconds
}

// DefaultLanguage is assumed when registration supplies no language code.
const DefaultLanguage = "en"
