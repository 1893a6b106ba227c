package model

import "go.mongodb.org/mongo-driver/bson"

// Feature is an opaque promotional document served verbatim.
type Feature = bson.M
