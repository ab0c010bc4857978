package models

// Account is the tenant every connection and job belongs to
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
