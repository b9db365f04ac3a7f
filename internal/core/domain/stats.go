package domain

// DashboardStats aggregates record counts for the dashboard.
type DashboardStats struct {
	ActiveComplaints      int `json:"active_complaints"`
	TotalComplaints       int `json:"total_complaints"`
	PendingComplaints     int `json:"pending_complaints"`
	ResolvedComplaints    int `json:"resolved_complaints"`
	UpcomingBookings      int `json:"upcoming_bookings"`
	StudyResourcesCount   int `json:"study_resources_count"`
	EventsRegistered      int `json:"events_registered"`
	PendingOrders         int `json:"pending_orders"`
	ActiveLostFound       int `json:"active_lost_found"`
	PendingBorrowRequests int `json:"pending_borrow_requests"`
	ActiveApplications    int `json:"active_applications"`
	PinnedNotices         int `json:"pinned_notices"`
	ActivePolls           int `json:"active_polls"`
	OpenHackathons        int `json:"open_hackathons"`
}
