package activity

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	EmployeeID   *int
	ActivityType *ActivityType
	Limit        int
}
