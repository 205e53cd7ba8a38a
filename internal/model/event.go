package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	HostID      int       `json:"host_id" db:"host_id"`
	SoldTickets int       `json:"sold_tickets" db:"sold_tickets"`
	MaxTickets  int       `json:"max_tickets" db:"max_tickets"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	Packages []*Package `json:"packages,omitempty" db:"-"`
	Host     *User      `json:"host,omitempty" db:"-"`
}

// Package 活動底下的票種
type Package struct {
	ID      int             `json:"id" db:"id"`
	EventID int             `json:"event_id" db:"event_id"`
	Name    string          `json:"name" db:"name"`
	Price   decimal.Decimal `json:"price" db:"price"`
}

// FindPackage 依 id 找出活動的票種
func (e *Event) FindPackage(id int) (*Package, bool) {
	for _, p := range e.Packages {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
