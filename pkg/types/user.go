package types

// Name mirrors the remote user's nested name record.
type Name struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Geolocation keeps the remote's string-typed coordinates as-is.
type Geolocation struct {
	Lat  string `json:"lat"`
	Long string `json:"long"`
}

// Address mirrors the remote user's nested address record.
type Address struct {
	City        string      `json:"city"`
	Street      string      `json:"street"`
	Number      int         `json:"number"`
	Zipcode     string      `json:"zipcode"`
	Geolocation Geolocation `json:"geolocation"`
}

// User is the signed-in account. At most one user is active at a time.
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Name     Name    `json:"name"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
}
