package model

// BookingRequest carries the fields the chat layer extracted from a
// conversation; dates are YYYY-MM-DD.
type BookingRequest struct {
	CustomerID      string `json:"customer_id" validate:"required,max=64"`
	CustomerName    string `json:"customer_name" validate:"required,max=100"`
	CustomerContact string `json:"customer_contact" validate:"required,max=64"`
	RoomType        string `json:"room_type" validate:"required,max=100"`
	StartDate       string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"end_date" validate:"required,datetime=2006-01-02"`
	NumPeople       int    `json:"num_people" validate:"min=1,max=50"`
}
