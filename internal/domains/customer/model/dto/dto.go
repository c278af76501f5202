package dto

import (
	"lodge/internal/domains/customer/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	IDNumber string `json:"id_number" validate:"omitempty,max=50"`
	Notes    string `json:"notes"     validate:"omitempty,max=500"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Phone:    c.Phone,
		IDNumber: c.IDNumber,
		Notes:    c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	Name     string `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
	IDNumber string `db:"id_number" json:"id_number" validate:"omitempty,max=50"`
	Notes    string `db:"notes"     json:"notes"     validate:"omitempty,max=500"`
}

type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	IDNumber string `json:"id_number"`
	Notes    string `json:"notes"`
	Debt     int64  `json:"debt"`
	gDto.Metadata
}

func (c *CustomerResponse) FromModel(mod model.Customer) {
	c.ID = mod.ID
	c.Name = mod.Name
	c.Phone = mod.Phone
	c.IDNumber = mod.IDNumber
	c.Notes = mod.Notes
	c.Debt = mod.Debt
	c.Metadata.FromModel(mod.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		g.Customers[i].FromModel(mod)
	}
}
