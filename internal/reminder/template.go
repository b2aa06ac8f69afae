package reminder

import "strings"

// Template is a canned reminder message with {Name}, {Amount} and
// {BusinessName} placeholders.
type Template struct {
	ID      int
	Title   string
	Message string
}

var templates = []Template{
	{
		ID:      1,
		Title:   "Friendly Reminder",
		Message: "Hello {Name}, this is a friendly reminder that you have a pending amount of ₹{Amount} with {BusinessName}. Please clear it at your convenience. Thank you!",
	},
	{
		ID:      2,
		Title:   "Payment Due",
		Message: "Dear {Name}, your payment of ₹{Amount} is due. Kindly make the payment soon. - {BusinessName}",
	},
	{
		ID:      3,
		Title:   "Urgent Payment",
		Message: "Hi {Name}, this is urgent! Please clear your pending amount of ₹{Amount} with {BusinessName} as soon as possible.",
	},
	{
		ID:      4,
		Title:   "Thank You",
		Message: "Thank you {Name} for clearing your dues with {BusinessName}. We appreciate your business!",
	},
}

// Templates returns the canned reminder templates.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)

	return out
}

// TemplateByID returns the template with the given ID, or false.
func TemplateByID(id int) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}

	return Template{}, false
}

// Render substitutes {Key} placeholders in the template message.
func Render(message string, vars map[string]string) string {
	for key, value := range vars {
		message = strings.ReplaceAll(message, "{"+key+"}", value)
	}

	return message
}
