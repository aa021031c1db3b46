package models

// Admin is an administrator account. Created by startup seeding, never
// through the API.
type Admin struct {
	ID           string `json:"id" bson:"id"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"passwordHash"`
}
