package service

import (
	"github.com/dom/football-dashboard/internal/dataset"
)

type Services struct {
	Player *PlayerService
}

func NewServices(table *dataset.Table) *Services {
	return &Services{
		Player: NewPlayerService(table),
	}
}
