package models

// Contact is the customer snapshot shape delivered by the (external)
// contact management screens.
type Contact struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}
