package dto

// DashboardStats contadores del panel principal.
type DashboardStats struct {
	TotalBooks     int `json:"totalBooks"`
	ArchivedBooks  int `json:"archivedBooks"`
	InUseBooks     int `json:"inUseBooks"`
	DailyMovements int `json:"dailyMovements"` // últimas 24 horas
}

// ActivityEntry movimiento reciente del panel.
type ActivityEntry struct {
	User   string `json:"user"`
	Action string `json:"action"`
	Time   string `json:"time"` // HH:MM
	Book   string `json:"book"`
}

// DashboardData respuesta completa del panel.
type DashboardData struct {
	Stats          DashboardStats  `json:"stats"`
	RecentActivity []ActivityEntry `json:"recentActivity"`
}
