package repository

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ExpandSpec names one relation a query wants resolved into an
// embedded document. Callers describe relations by name; how they are
// fetched stays inside the repository layer.
type ExpandSpec struct {
	From       string
	LocalField string
	As         string
}

// expandStages builds the aggregation stages resolving one relation.
// The unwind keeps documents whose reference is null or missing.
func expandStages(from, localField, as string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         from,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$" + as,
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// expandAll appends the stages for every requested relation.
func expandAll(pipeline []bson.D, specs []ExpandSpec) []bson.D {
	for _, spec := range specs {
		pipeline = append(pipeline, expandStages(spec.From, spec.LocalField, spec.As)...)
	}
	return pipeline
}
