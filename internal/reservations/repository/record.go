package repository

import (
	"fmt"
	"strconv"

	"cocoresort/pkg/model"
)

// Header is the fixed column order of a reservations file.
var Header = []string{
	"customer_id",
	"customer_name",
	"customer_contact",
	"num_people",
	"start_date",
	"end_date",
	"room_type",
	"price_per_night",
	"total_cost",
}

// Record is the flat, persisted form of a committed reservation.
type Record struct {
	CustomerID      string  `json:"customer_id" bson:"customer_id"`
	CustomerName    string  `json:"customer_name" bson:"customer_name"`
	CustomerContact string  `json:"customer_contact" bson:"customer_contact"`
	NumPeople       int     `json:"num_people" bson:"num_people"`
	StartDate       string  `json:"start_date" bson:"start_date"`
	EndDate         string  `json:"end_date" bson:"end_date"`
	RoomType        string  `json:"room_type" bson:"room_type"`
	PricePerNight   float64 `json:"price_per_night" bson:"price_per_night"`
	TotalCost       float64 `json:"total_cost" bson:"total_cost"`
}

// NewRecord flattens r. The total is computed here, from the nightly price
// and the number of nights, and nowhere else.
func NewRecord(r *model.Reservation) Record {
	return Record{
		CustomerID:      r.Customer.ID,
		CustomerName:    r.Customer.Name,
		CustomerContact: r.Customer.Contact,
		NumPeople:       r.NumPeople,
		StartDate:       r.StartDate(),
		EndDate:         r.EndDate(),
		RoomType:        r.Room.Type,
		PricePerNight:   r.Room.Price,
		TotalCost:       r.TotalCost(),
	}
}

func (rec Record) row() []string {
	return []string{
		rec.CustomerID,
		rec.CustomerName,
		rec.CustomerContact,
		strconv.Itoa(rec.NumPeople),
		rec.StartDate,
		rec.EndDate,
		rec.RoomType,
		formatAmount(rec.PricePerNight),
		formatAmount(rec.TotalCost),
	}
}

// recordFromRow decodes one data row; columns maps header names to indexes.
func recordFromRow(row []string, columns map[string]int) (Record, error) {
	get := func(name string) string { return row[columns[name]] }

	people, err := strconv.Atoi(get("num_people"))
	if err != nil {
		return Record{}, fmt.Errorf("num_people %q: not an integer", get("num_people"))
	}
	price, err := strconv.ParseFloat(get("price_per_night"), 64)
	if err != nil {
		return Record{}, fmt.Errorf("price_per_night %q: not a number", get("price_per_night"))
	}
	total, err := strconv.ParseFloat(get("total_cost"), 64)
	if err != nil {
		return Record{}, fmt.Errorf("total_cost %q: not a number", get("total_cost"))
	}

	return Record{
		CustomerID:      get("customer_id"),
		CustomerName:    get("customer_name"),
		CustomerContact: get("customer_contact"),
		NumPeople:       people,
		StartDate:       get("start_date"),
		EndDate:         get("end_date"),
		RoomType:        get("room_type"),
		PricePerNight:   price,
		TotalCost:       total,
	}, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
