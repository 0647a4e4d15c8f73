package dto

// OrderSummary is one row of the orders list.
type OrderSummary struct {
	OrderID      string `json:"orderId"`
	TaskName     string `json:"taskName"`
	TaskStatus   string `json:"taskStatus"`
	OrderDate    string `json:"orderDate"`
	ReqUserID    string `json:"reqUserId"`
	ReqUserPhone string `json:"reqUserPhone"`
}

// OrdersListResponse carries the filtered rows plus everything the list
// view renders around them: the name lookup snapshot (a key absent means
// the name never resolved before the request ended, "Error" means the
// lookup failed), the per-status tallies over the unfiltered collection,
// and the fixed filter vocabulary.
type OrdersListResponse struct {
	Orders        []OrderSummary    `json:"orders"`
	UserNames     map[string]string `json:"userNames"`
	StatusCounts  map[string]int    `json:"statusCounts"`
	StatusOptions []string          `json:"statusOptions"`
}

// CostItemResponse is one line of the price breakdown.
type CostItemResponse struct {
	IssueName string  `json:"issueName"`
	IssueCost float64 `json:"issueCost"`
}

// OrderHistoryResponse is one audit log entry.
type OrderHistoryResponse struct {
	Datetime   string `json:"datetime"`
	Comment    string `json:"comment"`
	TaskStatus string `json:"taskStatus"`
	StaffName  string `json:"staffName"`
}

// OrderDetailResponse provides full order info.
type OrderDetailResponse struct {
	OrderID         string                 `json:"orderId"`
	TaskName        string                 `json:"taskName"`
	TaskStatus      string                 `json:"taskStatus"`
	OrderDate       string                 `json:"orderDate"`
	ReqUserID       string                 `json:"reqUserId"`
	ReqUserPhone    string                 `json:"reqUserPhone"`
	ReqUserEmail    string                 `json:"reqUserEmail"`
	ReqUserStreet   string                 `json:"reqUserStreet"`
	ReqUserCity     string                 `json:"reqUserCity"`
	ReqUserState    string                 `json:"reqUserState"`
	TaskDescription string                 `json:"taskDescription"`
	CostBreakDown   []CostItemResponse     `json:"costBreakDown"`
	TotalCost       float64                `json:"totalCost"`
	History         []OrderHistoryResponse `json:"history"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	TaskStatus string `json:"taskStatus"`
	Comment    string `json:"comment"`
}

// UpdateStatusResponse echoes the accepted status so the caller can
// overwrite its displayed value without re-fetching.
type UpdateStatusResponse struct {
	OrderID    string `json:"orderId"`
	TaskStatus string `json:"taskStatus"`
}

// SummaryResponse carries the dashboard card stats.
type SummaryResponse struct {
	TotalUsers   int            `json:"totalUsers"`
	TotalOrders  int            `json:"totalOrders"`
	StatusCounts map[string]int `json:"statusCounts"`
}
