package domain

type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"`
}

// OrderIntent is the ephemeral summary handed to WhatsApp. It is never
// persisted; the deep link is the only artifact.
type OrderIntent struct {
	Product  Product
	Size     string
	Quantity int
	Total    string // locale-formatted, e.g. "2,500"
	Message  string
	Link     string
}
