package dto

// UserSummary is one row of the users list.
type UserSummary struct {
	UserID      string `json:"userID"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// RepairOrderRow is one resolved row of a user's repair-order table. The
// row id comes from the user's repairOrders entry at the same index, so
// navigation still works when the order fetch itself failed.
type RepairOrderRow struct {
	OrderID         string `json:"orderId"`
	TaskDescription string `json:"taskDescription"`
	OrderDate       string `json:"orderDate"`
}

// UserDetailResponse provides full user info plus the positional
// repair-order rows. Orders is parallel to RepairOrders; a null entry
// marks a row whose order fetch failed.
type UserDetailResponse struct {
	UserID       string            `json:"userID"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	PhoneNumber  string            `json:"phoneNumber"`
	Address      string            `json:"address"`
	TypeOfUser   string            `json:"typeOfUser"`
	RepairOrders []string          `json:"repairOrders"`
	Orders       []*RepairOrderRow `json:"orders"`
}
