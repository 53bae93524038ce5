package adapters

import "user_directory/internal/feature/employment/domain/entity"

// EmploymentDetailModel is the GORM model for the employmentdetails table.
// ID is not auto-generated: it is the identifier of the owning user.
type EmploymentDetailModel struct {
	ID          uint     `gorm:"primaryKey;autoIncrement:false"`
	CompanyName *string  `gorm:"column:companyname;size:255"`
	Salary      *float64 `gorm:"column:salary"`
}

func (EmploymentDetailModel) TableName() string {
	return "employmentdetails"
}

func (m EmploymentDetailModel) toEntity() entity.EmploymentDetail {
	return entity.EmploymentDetail{
		ID:          m.ID,
		CompanyName: m.CompanyName,
		Salary:      m.Salary,
	}
}
