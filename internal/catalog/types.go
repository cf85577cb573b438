package catalog

// Sort is the listing order accepted by the remote store API.
type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

func normalizeSort(s Sort) Sort {
	if s == SortDesc {
		return SortDesc
	}
	return SortAsc
}

// TokenResponse is the remote login reply.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterPayload is the user-create request body. The remote echoes it back
// with an id but never durably stores it.
type RegisterPayload struct {
	Email    string          `json:"email"`
	Username string          `json:"username"`
	Password string          `json:"password"`
	Name     RegisterName    `json:"name"`
	Address  RegisterAddress `json:"address"`
	Phone    string          `json:"phone"`
}

type RegisterName struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type RegisterAddress struct {
	City        string      `json:"city"`
	Street      string      `json:"street"`
	Number      int         `json:"number"`
	Zipcode     string      `json:"zipcode"`
	Geolocation RegisterGeo `json:"geolocation"`
}

type RegisterGeo struct {
	Lat  string `json:"lat"`
	Long string `json:"long"`
}

// RemoteCart is the remote cart record keyed by remote product ids.
type RemoteCart struct {
	ID       int                 `json:"id"`
	UserID   int                 `json:"userId"`
	Date     string              `json:"date"`
	Products []RemoteCartProduct `json:"products"`
}

type RemoteCartProduct struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// ProductInput is the admin-dashboard write payload. Prices are in USD, the
// remote's native currency; the remote only echoes these writes back.
type ProductInput struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}
