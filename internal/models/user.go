package models

// User is a demo account record. Values are built per request and never stored.
type User struct {
	ID    uint32 `json:"id" example:"42"`
	Name  string `json:"name" example:"User 42"`
	Email string `json:"email" example:"user42@example.com"`
}
