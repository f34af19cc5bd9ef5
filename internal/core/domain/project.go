package domain

// Project is a client job that money records, budgets and invoices hang off.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
