package employee

type EmployeeResponse struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	EmployeeCode  string  `json:"employee_code"`
	DepartmentID  *string `json:"department_id,omitempty"`
	DesignationID *string `json:"designation_id,omitempty"`
	IsActive      bool    `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		FullName:      e.FullName,
		EmployeeCode:  e.EmployeeCode,
		DepartmentID:  e.DepartmentID,
		DesignationID: e.DesignationID,
		IsActive:      e.IsActive,
	}
}
