package profile

// Profile is the stored customer contact details used to pre-fill checkout.
type Profile struct {
	CustomerID int64  `json:"customerId"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
}
