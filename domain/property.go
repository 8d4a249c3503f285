package domain

import (
	"encoding/json"
	"io"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Property struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Bedrooms    int                `bson:"bedrooms" json:"bedrooms" validate:"gte=0"`
	Amenities   []string           `bson:"amenities" json:"amenities"`
	ImageUrl    string             `bson:"imageUrl" json:"imageUrl"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Properties []*Property

func (o *Property) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Properties) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Property) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}

func (o *Properties) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}

// PropertyFilter holds the optional catalog query constraints. Absent
// fields impose no constraint; the present ones combine with AND.
type PropertyFilter struct {
	Location    string
	MinPrice    *float64
	MaxPrice    *float64
	MinBedrooms *int
}

func (f *PropertyFilter) IsEmpty() bool {
	return f == nil ||
		(f.Location == "" && f.MinPrice == nil && f.MaxPrice == nil && f.MinBedrooms == nil)
}

// ToQuery builds the mongo filter document. Location is a case-insensitive
// substring match, the price bounds are inclusive.
func (f *PropertyFilter) ToQuery() bson.M {
	query := bson.M{}
	if f == nil {
		return query
	}
	if f.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Location), Options: "i"}
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}
	if f.MinBedrooms != nil {
		query["bedrooms"] = bson.M{"$gte": *f.MinBedrooms}
	}
	return query
}
