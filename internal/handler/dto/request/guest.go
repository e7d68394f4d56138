package request

type CreateGuestRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateGuestRequest struct {
	Name string `json:"name" binding:"required"`
}
