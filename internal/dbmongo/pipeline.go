package dbmongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LookupUser joins users on localField into the single embedded document
// as, keeping only fields. Missing accounts leave as unset.
func LookupUser(localField, as string, fields ...string) mongo.Pipeline {
	project := bson.D{}
	for _, f := range fields {
		project = append(project, bson.E{Key: f, Value: 1})
	}
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UsersCollection},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "pipeline", Value: bson.A{bson.D{{Key: "$project", Value: project}}}},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + as},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// Stages concatenates pipelines and single stages into one pipeline.
func Stages(parts ...any) mongo.Pipeline {
	var out mongo.Pipeline
	for _, p := range parts {
		switch v := p.(type) {
		case bson.D:
			out = append(out, v)
		case mongo.Pipeline:
			out = append(out, v...)
		default:
			panic(fmt.Sprintf("dbmongo: unsupported pipeline part %T", p))
		}
	}
	return out
}
