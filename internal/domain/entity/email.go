package entity

// Email is a single HTML message to one recipient.
type Email struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}
