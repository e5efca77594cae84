package entity

// DayCount is one bucket of a per-day aggregation.
type DayCount struct {
	Day   string `bson:"_id" json:"day"`
	Count int64  `bson:"count" json:"count"`
}

// RoleCount is one bucket of the role distribution aggregation.
type RoleCount struct {
	Role  UserRole `bson:"_id" json:"role"`
	Count int64    `bson:"count" json:"count"`
}

// AnalyticsReport is the dashboard aggregate view over a time window.
type AnalyticsReport struct {
	Days          int         `json:"days"`
	TotalUsers    int64       `json:"total_users"`
	TotalBlogs    int64       `json:"total_blogs"`
	TotalGroups   int64       `json:"total_groups"`
	TotalComments int64       `json:"total_comments"`
	SignupsPerDay []DayCount  `json:"signups_per_day"`
	BlogsPerDay   []DayCount  `json:"blogs_per_day"`
	GroupsPerDay  []DayCount  `json:"groups_per_day"`
	UsersByRole   []RoleCount `json:"users_by_role"`
}
