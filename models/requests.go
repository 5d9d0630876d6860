package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Phone      string  `json:"phone"`
	Email      *string `json:"email,omitempty"`
	Country    string  `json:"country"`
	City       string  `json:"city"`
	Address    string  `json:"address"`
	Password   string  `json:"password"`
	Repassword string  `json:"repassword"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// CheckRequest is the body of POST /auth/check.
type CheckRequest struct {
	Token string `json:"token"`
}

// ActivateRequest is the body of POST /auth/activate/{user}.
type ActivateRequest struct {
	Code string `json:"code"`
}

// UpdateUserRequest is a partial update of a user profile.
// Nil fields are left untouched.
//
// Admin, Active, Visible and Code are secured fields: a request carrying any
// of them locks the account instead of being applied.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Country   *string `json:"country,omitempty"`
	City      *string `json:"city,omitempty"`
	Address   *string `json:"address,omitempty"`
	Photo     *string `json:"photo,omitempty"`

	OldPassword   string `json:"old_password,omitempty"`
	NewPassword   string `json:"new_password,omitempty"`
	RenewPassword string `json:"renew_password,omitempty"`

	Admin   *bool   `json:"admin,omitempty"`
	Active  *bool   `json:"active,omitempty"`
	Visible *bool   `json:"visible,omitempty"`
	Code    *string `json:"code,omitempty"`
}

// TouchesSecuredFields reports whether the request tries to change a field
// that only the server may change.
func (r UpdateUserRequest) TouchesSecuredFields() bool {
	return r.Admin != nil || r.Active != nil || r.Visible != nil || r.Code != nil
}

// ChangesPassword reports whether all three password change fields are set.
func (r UpdateUserRequest) ChangesPassword() bool {
	return r.OldPassword != "" && r.NewPassword != "" && r.RenewPassword != ""
}

// UserUpdate is the set of columns written by a profile update.
// Nil fields are left untouched.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Country      *string
	City         *string
	Address      *string
	Photo        *string
	PasswordHash *string

	// ClearEmail writes NULL to the email column. Email is ignored when set.
	ClearEmail bool
}

// Empty reports whether the update would not change any column.
func (u UserUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.Country == nil &&
		u.City == nil && u.Address == nil && u.Photo == nil && u.PasswordHash == nil && !u.ClearEmail
}

// CreatePropertyRequest is the body of POST /properties.
type CreatePropertyRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Street      string   `json:"street"`
	Zipcode     string   `json:"zipcode"`
	Type        string   `json:"type"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Kitchen     int      `json:"kitchen"`
	Size        float64  `json:"size"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"long"`
	Reasons     []string `json:"reasons"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

// UpdatePropertyRequest is the body of PUT /properties/{property}.
// Nil fields are left untouched.
//
// Active and Verified are set by administrators only: a request carrying
// either of them unlists the property instead of being applied.
type UpdatePropertyRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Country     *string   `json:"country,omitempty"`
	City        *string   `json:"city,omitempty"`
	Street      *string   `json:"street,omitempty"`
	Zipcode     *string   `json:"zipcode,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Bedrooms    *int      `json:"bedrooms,omitempty"`
	Bathrooms   *int      `json:"bathrooms,omitempty"`
	Kitchen     *int      `json:"kitchen,omitempty"`
	Size        *float64  `json:"size,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Latitude    *float64  `json:"lat,omitempty"`
	Longitude   *float64  `json:"long,omitempty"`
	Reasons     *[]string `json:"reasons,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
	Images      *[]string `json:"images,omitempty"`

	Active   *bool `json:"active,omitempty"`
	Verified *bool `json:"verified,omitempty"`
}

// TouchesStatus reports whether the request tries to change the review
// status of the property.
func (r UpdatePropertyRequest) TouchesStatus() bool {
	return r.Active != nil || r.Verified != nil
}

// PropertyUpdate is the set of columns written by a property update.
// Nil fields are left untouched.
type PropertyUpdate struct {
	Name        *string
	Description *string
	Country     *string
	City        *string
	Street      *string
	Zipcode     *string
	Type        *string
	Bedrooms    *int
	Bathrooms   *int
	Kitchen     *int
	Size        *float64
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	Reasons     *[]string
	Amenities   *[]string
	Images      *[]string

	// ResetStatus sets active and verified to false.
	ResetStatus bool
}

// Empty reports whether the update would not change any column.
func (u PropertyUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Country == nil && u.City == nil &&
		u.Street == nil && u.Zipcode == nil && u.Type == nil && u.Bedrooms == nil &&
		u.Bathrooms == nil && u.Kitchen == nil && u.Size == nil && u.Price == nil &&
		u.Latitude == nil && u.Longitude == nil && u.Reasons == nil && u.Amenities == nil &&
		u.Images == nil && !u.ResetStatus
}

// NotificationQuery selects the notifications of a user.
type NotificationQuery struct {
	UserID int64
	Type   NotificationType

	// MarkSeen marks the returned notifications as seen.
	MarkSeen bool
}
