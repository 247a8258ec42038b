package request

type RentHangersRequest struct {
	Count int `json:"count" binding:"required,gt=0"`
}
