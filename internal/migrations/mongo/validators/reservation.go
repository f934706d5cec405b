package validators

import "go.mongodb.org/mongo-driver/bson"

const isoDatePattern = `^\d{4}-\d{2}-\d{2}$`

var ReservationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"customer_id",
			"customer_name",
			"customer_contact",
			"num_people",
			"start_date",
			"end_date",
			"room_type",
			"price_per_night",
			"total_cost",
			"reservations_day",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"customer_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 64,
			},

			"customer_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"customer_contact": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 64,
			},

			"num_people": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"start_date": bson.M{
				"bsonType": "string",
				"pattern":  isoDatePattern,
			},

			"end_date": bson.M{
				"bsonType": "string",
				"pattern":  isoDatePattern,
			},

			"room_type": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"price_per_night": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"total_cost": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"reservations_day": bson.M{
				"bsonType": "string",
				"pattern":  isoDatePattern,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
