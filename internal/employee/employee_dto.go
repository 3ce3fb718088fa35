package employee

type CreateEmployeeRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	EmployeeNumber   string `json:"employee_number"`
	Gender           string `json:"gender" binding:"required,oneof=male female"`
	LeaveGroupID     string `json:"leave_group_id"`
	EmploymentType   string `json:"employment_type" binding:"omitempty,oneof=general teacher"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=probation regular"`
	JoiningDate      string `json:"joining_date" binding:"required"`
	ProbationMonths  int    `json:"probation_months" binding:"omitempty,min=0,max=24"`
	OfficeDays       string `json:"office_days"`
	OfficeTime       string `json:"office_time"`
}

type UpdateEmployeeRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Gender           string `json:"gender" binding:"required,oneof=male female"`
	LeaveGroupID     string `json:"leave_group_id"`
	EmploymentType   string `json:"employment_type" binding:"omitempty,oneof=general teacher"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=probation regular"`
	OfficeDays       string `json:"office_days"`
	OfficeTime       string `json:"office_time"`
	Status           string `json:"status" binding:"omitempty,oneof=active resigned terminated"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	EmployeeNumber   string `json:"employee_number"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Gender           string `json:"gender"`
	LeaveGroupID     string `json:"leave_group_id,omitempty"`
	EmploymentType   string `json:"employment_type"`
	EmploymentStatus string `json:"employment_status"`
	JoiningDate      string `json:"joining_date"`
	ConfirmationDate string `json:"confirmation_date,omitempty"`
	ProbationMonths  int    `json:"probation_months"`
	OfficeDays       string `json:"office_days"`
	OfficeTime       string `json:"office_time"`
	Status           string `json:"status"`
}
