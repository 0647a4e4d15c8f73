package domain

import "strings"

// Order is a repair order as served by the remote order service. The
// upstream payload spells the identifier both "_id" and "orderId"; the
// adapter reconciles them into the single OrderID field before an Order
// reaches this package's consumers.
type Order struct {
	OrderID         string
	TaskName        string
	TaskStatus      string
	OrderDate       string
	ReqUserID       string
	ReqUserPhone    string
	ReqUserEmail    string
	ReqUserStreet   string
	ReqUserCity     string
	ReqUserState    string
	TaskDescription string
	CostBreakDown   []CostItem
}

// CostItem is one line of an order's price breakdown.
type CostItem struct {
	IssueName string
	IssueCost float64
}

// TotalCost sums the cost breakdown for display.
func (o Order) TotalCost() float64 {
	var total float64
	for _, item := range o.CostBreakDown {
		total += item.IssueCost
	}
	return total
}

// OrderHistoryItem is one append-only entry of an order's audit log.
// The dashboard never writes history directly; entries appear upstream
// as a side effect of status updates.
type OrderHistoryItem struct {
	Datetime   string
	Comment    string
	TaskStatus string
	StaffName  string
}

// StatusOptions is the fixed vocabulary of order statuses, as displayed.
var StatusOptions = []string{
	"Audit Done",
	"Canceled",
	"Canceled Reversal",
	"Chargeback",
	"Complete",
	"Delivered",
	"Delivery Boy on the Way",
	"Denied",
	"Deliver to Vendor",
	"Expired",
	"Failed",
	"Not Repaired",
	"Part Not Available",
	"Pending",
	"Processed",
	"Processing",
	"QC Passed",
	"Quality Check",
	"Refunded",
	"Repair Completed",
	"Repair Repeat",
	"Repair Work on Hold",
	"Returned",
	"Reversed",
	"Shipped",
	"Technician on the Way",
	"Unpaid",
	"Voided",
	"Work in Progress",
}

var statusKeys = buildStatusKeys()

func buildStatusKeys() map[string]struct{} {
	keys := make(map[string]struct{}, len(StatusOptions))
	for _, s := range StatusOptions {
		keys[NormalizeStatus(s)] = struct{}{}
	}
	return keys
}

// NormalizeStatus lower-cases a status and collapses internal whitespace
// runs to single hyphens, so "Quality Check" and "quality-check" compare
// as the same key.
func NormalizeStatus(status string) string {
	fields := strings.Fields(strings.ToLower(status))
	return strings.Join(fields, "-")
}

// IsValidStatus reports whether the given status belongs to the fixed
// vocabulary, compared under normalization.
func IsValidStatus(status string) bool {
	_, ok := statusKeys[NormalizeStatus(status)]
	return ok
}
