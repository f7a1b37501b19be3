package request

type UpsertPlaymatePostRequest struct {
	Title         string `json:"title" binding:"required,max=200"`
	Description   string `json:"description" binding:"max=2000"`
	NeededPlayers int    `json:"needed_players" binding:"required,min=1,max=20"`
}

type SetPlaymateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open closed"`
}
