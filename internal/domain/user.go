package domain

// User is an end-user record as served by the remote user service.
// Fields arrive verbatim; the dashboard defines no invariants beyond
// rendering what it received.
type User struct {
	UserID      string
	Name        string
	Email       string
	PhoneNumber string
	BuildingNo  string
	StreetName  string
	Area        string
	City        string
	State       string
	PinCode     string
	TypeOfUser  string
	// RepairOrders holds order ids owned by this user, in the order the
	// user service returns them. Position matters: detail rows are joined
	// back to RepairOrders[index].
	RepairOrders []string
}

// Address renders the flat address fields as a single display line.
func (u User) Address() string {
	parts := []string{u.BuildingNo, u.StreetName, u.Area, u.City, u.State, u.PinCode}
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}
