package models

type IsJobNameAvailableResponse struct {
	IsAvailable bool `json:"isAvailable"`
}

type DeleteJobRequest struct {
	ID string `json:"id"`
}
