package dto

import "time"

type EventListDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	StartAt          time.Time `json:"start_at"`
	EndAt            time.Time `json:"end_at"`
	Category         string    `json:"category"`
	Status           string    `json:"status"`
	ClientName       string    `json:"client_name"`
	SourceContractID *uint     `json:"source_contract_id"`
}
